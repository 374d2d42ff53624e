package app

import (
	adminAPI "casino_bot_backend/internal/api/admin"
	authAPI "casino_bot_backend/internal/api/auth"
	blackjackAPI "casino_bot_backend/internal/api/blackjack"
	profileAPI "casino_bot_backend/internal/api/profile"
	rouletteAPI "casino_bot_backend/internal/api/roulette"
	slotsAPI "casino_bot_backend/internal/api/slots"
	"casino_bot_backend/internal/config"
	"casino_bot_backend/internal/config/env"
	"casino_bot_backend/internal/game/registry"
	"casino_bot_backend/internal/game/rng"
	"casino_bot_backend/internal/game/slots"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/repository/auth_repo"
	"casino_bot_backend/internal/repository/moderation_repo"
	"casino_bot_backend/internal/repository/transaction_repo"
	"casino_bot_backend/internal/repository/user_repo"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/internal/service/auth"
	"casino_bot_backend/internal/service/blackjack"
	"casino_bot_backend/internal/service/moderation"
	"casino_bot_backend/internal/service/profile"
	"casino_bot_backend/internal/service/roulette"
	slotsServ "casino_bot_backend/internal/service/slots"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Общие игровые биты: генератор и пер-юзерные замки
	gameCfg config.GameConfig
	locks   *registry.UserLocks
	rnd     rng.Source

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository

	// Blackjack bits
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Roulette bits
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Slots bits
	slotsServ service.SlotsService
	slotsHand *slotsAPI.Handler

	// Profile bits
	profileServ service.ProfileService
	profileHand *profileAPI.Handler

	// Moderation bits
	adminConfig config.AdminConfig
	modRepo     repository.ModerationRepository
	modServ     service.ModerationService
	adminHand   *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

// UserLocks общий на все игры: одна блокировка сериализует
// все раунды пользователя независимо от игры
func (sp *ServiceProvider) UserLocks() *registry.UserLocks {
	if sp.locks == nil {
		sp.locks = registry.NewUserLocks()
	}
	return sp.locks
}

func (sp *ServiceProvider) RNG() rng.Source {
	if sp.rnd == nil {
		sp.rnd = rng.Default()
	}
	return sp.rnd
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AdminConfig() config.AdminConfig {
	if sp.adminConfig == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminConfig = cfg
	}
	return sp.adminConfig
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx))
	}
	return sp.txRepo
}

func (sp *ServiceProvider) ModerationRepo(ctx context.Context) repository.ModerationRepository {
	if sp.modRepo == nil {
		sp.modRepo = moderation_repo.NewModerationRepository(sp.DBClient(ctx))
	}
	return sp.modRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTConfig(),
			sp.GameCfg().Economy(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.UserLocks(),
			sp.TXManager(ctx),
			sp.GameCfg().Economy(),
			sp.RNG(),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv: sp.BlackjackService(ctx),
		})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.UserLocks(),
			sp.TXManager(ctx),
			sp.GameCfg().Economy(),
			sp.RNG(),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(ctx),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slotsServ.NewSlotsService(
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			slots.NewMachine(sp.GameCfg().SlotSymbols()),
			sp.UserLocks(),
			sp.TXManager(ctx),
			sp.GameCfg().Economy(),
			sp.GameCfg().SlotAnimationFrames(),
			sp.RNG(),
		)
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{
			Serv: sp.SlotsService(ctx),
		})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) ProfileService(ctx context.Context) service.ProfileService {
	if sp.profileServ == nil {
		sp.profileServ = profile.NewProfileService(sp.UserRepo(ctx))
	}
	return sp.profileServ
}

func (sp *ServiceProvider) ProfileHandler(ctx context.Context) *profileAPI.Handler {
	if sp.profileHand == nil {
		sp.profileHand = profileAPI.NewHandler(profileAPI.HandlerDeps{
			Serv: sp.ProfileService(ctx),
		})
	}
	return sp.profileHand
}

func (sp *ServiceProvider) ModerationService(ctx context.Context) service.ModerationService {
	if sp.modServ == nil {
		sp.modServ = moderation.NewModerationService(
			sp.UserRepo(ctx),
			sp.ModerationRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.modServ
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv:        sp.ModerationService(ctx),
			AdminConfig: sp.AdminConfig(),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Игровые и профильные эндпоинты требуют access токен
		authMW := middleware.Auth(sp.JWTConfig())

		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/start", blackjackHandler.Start)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
		})

		rouletteHandler := sp.RouletteHandler(ctx)
		r.Route("/roulette", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/bet", rouletteHandler.PlaceBet)
			rr.Post("/spin", rouletteHandler.Spin)
		})

		slotsHandler := sp.SlotsHandler(ctx)
		r.Route("/slots", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/spin", slotsHandler.Spin)
		})

		profileHandler := sp.ProfileHandler(ctx)
		r.Route("/profile", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Get("/", profileHandler.Profile)
			rr.Get("/top", profileHandler.TopPlayers)
		})

		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/ban", adminHandler.Ban)
			rr.Post("/unban", adminHandler.Unban)
		})

		sp.router = r
	}

	return sp.router
}
