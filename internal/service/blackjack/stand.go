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

// Stand завершает ход игрока: дилер добирает до 17, суммы сравниваются
// и итог раунда применяется к аккаунту. Рука дилера раскрывается
func (s *serv) Stand(ctx context.Context, userID int) (*model.BlackjackStandResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, game.ErrNoActiveSession
	}

	// Бан проверяется на каждом действии: замороженная сессия
	// не разрешается и не выплачивается
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, service.ErrAccountBanned
	}

	playerTotal, dealerTotal, err := sess.Stand()
	if err != nil {
		s.sessions.Remove(userID)
		return nil, err
	}

	// Stand всегда терминален
	s.sessions.Remove(userID)

	var outcome economy.Outcome
	switch sess.Phase() {
	case bj.PhaseWon:
		outcome = economy.OutcomeWin
	case bj.PhaseDraw:
		outcome = economy.OutcomeDraw
	default:
		outcome = economy.OutcomeLose
	}

	payout := sess.Payout()
	now := time.Now()

	var res *model.BlackjackStandResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}

		economy.ApplyRoundResult(user, payout, sess.Bet(), outcome, now, s.eco)

		err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			GameType:  gameType,
			BetAmount: sess.Bet(),
			WinAmount: payout,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateAccountState(txCtx, user); err != nil {
			return err
		}

		res = &model.BlackjackStandResult{
			PlayerHand:  sess.PlayerHand(),
			DealerHand:  sess.DealerHand(),
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
			Outcome:     string(sess.Phase()),
			Payout:      payout,
			Balance:     user.Balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
