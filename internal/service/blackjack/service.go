package blackjack

import (
	bj "casino_bot_backend/internal/game/blackjack"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/registry"
	"casino_bot_backend/internal/game/rng"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const gameType = "blackjack"

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	sessions  *registry.Arena[*bj.Session]
	locks     *registry.UserLocks
	txManager trm.Manager
	eco       economy.Config
	rnd       rng.Source
}

// NewBlackjackService создает сервис блэкджека. Живые сессии держатся
// в арене с ключом по пользователю, все действия пользователя
// сериализуются общим пер-пользовательским замком
func NewBlackjackService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	locks *registry.UserLocks,
	txManager trm.Manager,
	eco economy.Config,
	rnd rng.Source,
) service.BlackjackService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		sessions:  registry.NewArena[*bj.Session](),
		locks:     locks,
		txManager: txManager,
		eco:       eco,
		rnd:       rnd,
	}
}
