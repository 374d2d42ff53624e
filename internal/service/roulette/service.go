package roulette

import (
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/registry"
	"casino_bot_backend/internal/game/rng"
	rl "casino_bot_backend/internal/game/roulette"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const gameType = "roulette"

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	sessions  *registry.Arena[*rl.Session]
	locks     *registry.UserLocks
	txManager trm.Manager
	eco       economy.Config
	rnd       rng.Source
}

// NewRouletteService создает сервис рулетки. Сессия - накапливающийся
// список ставок, у пользователя не больше одной живой сессии
func NewRouletteService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	locks *registry.UserLocks,
	txManager trm.Manager,
	eco economy.Config,
	rnd rng.Source,
) service.RouletteService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		sessions:  registry.NewArena[*rl.Session](),
		locks:     locks,
		txManager: txManager,
		eco:       eco,
		rnd:       rnd,
	}
}
