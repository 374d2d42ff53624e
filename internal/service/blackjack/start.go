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

// Start начинает раунд блэкджека: проверяет квоту, списывает ставку
// и сдает карты. При блэкджеке с раздачи раунд сразу разрешается
// с тройной выплатой, вторая карта дилера в ответе не раскрывается
func (s *serv) Start(ctx context.Context, userID, bet int) (*model.BlackjackStartResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	// У пользователя не больше одной живой сессии блэкджека
	if _, ok := s.sessions.Get(userID); ok {
		return nil, game.ErrSessionInProgress
	}

	now := time.Now()

	var (
		res  *model.BlackjackStartResult
		sess *bj.Session
	)

	// Весь цикл чтение-проверка-мутация-запись в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			return err
		}
		if user.IsBanned {
			return service.ErrAccountBanned
		}

		// Дневная квота проверяется до старта новой сессии,
		// выполненный при проверке сброс фиксируется ниже
		if _, err := economy.AdmitDailyPlay(user, now, s.eco); err != nil {
			return err
		}

		if bet <= 0 || bet > user.Balance {
			return game.ErrInsufficientStake
		}

		// Списание ставки при размещении
		user.Balance -= bet

		sess, err = bj.NewSession(bet, s.rnd)
		if err != nil {
			return err
		}

		// Блэкджек с раздачи - терминальный раунд
		if sess.Phase() == bj.PhaseBlackjack {
			economy.ApplyRoundResult(user, sess.Payout(), bet, economy.OutcomeWin, now, s.eco)

			err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
				ID:        uuid.NewString(),
				UserID:    userID,
				GameType:  gameType,
				BetAmount: bet,
				WinAmount: sess.Payout(),
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}

		if err := s.userRepo.UpdateAccountState(txCtx, user); err != nil {
			return err
		}

		playerHand := sess.PlayerHand()
		res = &model.BlackjackStartResult{
			PlayerHand:   playerHand,
			DealerUpcard: sess.DealerUpcard(),
			PlayerTotal:  bj.HandValue(playerHand),
			IsBlackjack:  sess.Phase() == bj.PhaseBlackjack,
			Payout:       sess.Payout(),
			Balance:      user.Balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Нетерминальная сессия живет до hit/stand
	if !sess.Terminal() {
		s.sessions.Put(userID, sess)
	}

	return res, nil
}
