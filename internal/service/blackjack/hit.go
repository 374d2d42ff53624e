package blackjack

import (
	"context"
	"time"

	"casino_bot_backend/internal/game"
	bj "casino_bot_backend/internal/game/blackjack"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/service"

	"github.com/google/uuid"
)

// Hit добирает карту в руку игрока. Перебор разрешает раунд проигрышем:
// ставка уже списана, начислений нет
func (s *serv) Hit(ctx context.Context, userID int) (*model.BlackjackHitResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, game.ErrNoActiveSession
	}

	// Бан проверяется на каждом действии, не только на старте.
	// Живая сессия не уничтожается - замораживается до разблокировки
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, service.ErrAccountBanned
	}

	total, err := sess.Hit()
	if err != nil {
		// Неожиданное состояние сессии - сбрасываем, чтобы не
		// распространять испорченное состояние
		s.sessions.Remove(userID)
		return nil, err
	}

	res := &model.BlackjackHitResult{
		PlayerHand:  sess.PlayerHand(),
		PlayerTotal: total,
		Busted:      sess.Phase() == bj.PhaseBust,
	}

	if !res.Busted {
		return res, nil
	}

	// Терминальная фаза: сессия снимается независимо от судьбы записи
	s.sessions.Remove(userID)

	now := time.Now()
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}

		economy.ApplyRoundResult(user, 0, sess.Bet(), economy.OutcomeLose, now, s.eco)

		err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			GameType:  gameType,
			BetAmount: sess.Bet(),
			WinAmount: 0,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		return s.userRepo.UpdateAccountState(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
