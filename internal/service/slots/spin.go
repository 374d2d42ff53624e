package slots

import (
	"context"
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/service"

	"github.com/google/uuid"
)

// Spin выполняет один спин слотов: списывает ставку, разыгрывает три
// символа и сразу разрешает раунд. Кадры анимации генерируются после
// итогового розыгрыша и на него не влияют
func (s *serv) Spin(ctx context.Context, userID, bet int) (*model.SlotsSpinResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	now := time.Now()

	var res *model.SlotsSpinResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}
		if user.IsBanned {
			return service.ErrAccountBanned
		}

		// Каждый спин - самостоятельный раунд, квота проверяется всегда
		if _, err := economy.AdmitDailyPlay(user, now, s.eco); err != nil {
			return err
		}

		if bet <= 0 || bet > user.Balance {
			return game.ErrInsufficientStake
		}

		// Списание ставки при размещении
		user.Balance -= bet

		spinRes, err := s.machine.Spin(bet, s.rnd)
		if err != nil {
			return err
		}

		outcome := economy.OutcomeLose
		if spinRes.Payout > 0 {
			outcome = economy.OutcomeWin
		}
		economy.ApplyRoundResult(user, spinRes.Payout, bet, outcome, now, s.eco)

		err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			GameType:  gameType,
			BetAmount: bet,
			WinAmount: spinRes.Payout,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateAccountState(txCtx, user); err != nil {
			return err
		}

		res = &model.SlotsSpinResult{
			Symbols: spinRes.Symbols,
			Frames:  s.machine.AnimationFrames(s.frames, s.rnd),
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
