package roulette

import (
	"context"
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/economy"
	rl "casino_bot_backend/internal/game/roulette"
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/service"
)

// PlaceBet принимает ставку в список пользователя. Первая ставка
// открывает сессию и проходит проверку дневной квоты; ставка списывается
// с баланса при размещении, выплата начисляется только на спине
func (s *serv) PlaceBet(ctx context.Context, userID int, category, value string, stake int) (*model.RouletteBetAck, error) {
	// Валидация категории и селектора до каких-либо списаний
	bet, err := rl.NewBet(rl.BetCategory(category), value, stake)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, exists := s.sessions.Get(userID)
	now := time.Now()

	var res *model.RouletteBetAck
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}
		if user.IsBanned {
			return service.ErrAccountBanned
		}

		// Квота проверяется только при открытии новой сессии ставок,
		// не перед каждой ставкой внутри существующей
		if !exists {
			if _, err := economy.AdmitDailyPlay(user, now, s.eco); err != nil {
				return err
			}
		}

		if stake > user.Balance {
			return game.ErrInsufficientStake
		}

		// Списание ставки при размещении
		user.Balance -= stake
		if err := s.userRepo.UpdateAccountState(txCtx, user); err != nil {
			return err
		}

		res = &model.RouletteBetAck{Balance: user.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !exists {
		sess = rl.NewSession()
	}
	sess.Place(bet)
	s.sessions.Put(userID, sess)

	res.BetCount = len(sess.Bets())
	res.TotalStake = sess.TotalStake()

	return res, nil
}
