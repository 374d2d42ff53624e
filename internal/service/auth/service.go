package auth

import (
	"regexp"

	"casino_bot_backend/internal/config"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

// Логин - только латиница и цифры, длина 3..32
var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,32}$`)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	eco       economy.Config
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	eco economy.Config,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		eco:       eco,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
