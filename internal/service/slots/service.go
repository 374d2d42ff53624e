package slots

import (
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/registry"
	"casino_bot_backend/internal/game/rng"
	sl "casino_bot_backend/internal/game/slots"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const gameType = "slots"

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	machine   *sl.Machine
	locks     *registry.UserLocks
	txManager trm.Manager
	eco       economy.Config
	frames    int
	rnd       rng.Source
}

// NewSlotsService создает сервис слотов. Слоты без сессий:
// каждый спин - самостоятельный раунд
func NewSlotsService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	machine *sl.Machine,
	locks *registry.UserLocks,
	txManager trm.Manager,
	eco economy.Config,
	frames int,
	rnd rng.Source,
) service.SlotsService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		machine:   machine,
		locks:     locks,
		txManager: txManager,
		eco:       eco,
		frames:    frames,
		rnd:       rnd,
	}
}
