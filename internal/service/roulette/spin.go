package roulette

import (
	"context"
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/service"

	"github.com/google/uuid"
)

// Spin разыгрывает номер и разрешает все отложенные ставки пользователя
// одним раундом. Список ставок очищается безусловно - выигрыш или нет
func (s *serv) Spin(ctx context.Context, userID int) (*model.RouletteSpinResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, game.ErrNoPendingBets
	}

	// Бан проверяется на каждом действии. Отложенные ставки
	// не потребляются - раунд замораживается до разблокировки
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, service.ErrAccountBanned
	}

	// Сессия потребляется спином в любом случае
	s.sessions.Remove(userID)

	spinRes, err := sess.Spin(s.rnd)
	if err != nil {
		return nil, err
	}

	outcome := economy.OutcomeLose
	if spinRes.Payout > 0 {
		outcome = economy.OutcomeWin
	}

	now := time.Now()

	var res *model.RouletteSpinResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}

		economy.ApplyRoundResult(user, spinRes.Payout, spinRes.TotalStake, outcome, now, s.eco)

		err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			GameType:  gameType,
			BetAmount: spinRes.TotalStake,
			WinAmount: spinRes.Payout,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateAccountState(txCtx, user); err != nil {
			return err
		}

		res = &model.RouletteSpinResult{
			Number:  spinRes.Pocket.Number,
			Color:   spinRes.Pocket.Color,
			Payout:  spinRes.Payout,
			Balance: user.Balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
