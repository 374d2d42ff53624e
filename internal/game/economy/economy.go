package economy

import (
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/model"
)

// Outcome - исход разрешенного раунда с точки зрения экономики
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLose Outcome = "lose"
)

// Config - числа экономики. Загружаются из config.yaml
type Config struct {
	StartBalance    int `yaml:"start_balance"`
	StartRating     int `yaml:"start_rating"`
	RatingWinDelta  int `yaml:"rating_win_delta"`
	RatingLossDelta int `yaml:"rating_loss_delta"`
	MaxDailyGames   int `yaml:"max_daily_games"`
}

// DefaultConfig - значения экономики по умолчанию
func DefaultConfig() Config {
	return Config{
		StartBalance:    1000,
		StartRating:     1000,
		RatingWinDelta:  25,
		RatingLossDelta: 15,
		MaxDailyGames:   100,
	}
}

// ApplyRoundResult применяет итог раунда к аккаунту. Контракт единый для
// всех игр: ставка списана с баланса при размещении, поэтому на победе
// начисляется полная выплата (она уже включает возврат ставки), на ничьей
// возвращается ставка, на проигрыше начислений нет. Рейтинг не опускается
// ниже нуля. Счетчики games_played и games_today растут на каждом раунде
// независимо от исхода
func ApplyRoundResult(u *model.User, payout, stake int, outcome Outcome, now time.Time, cfg Config) {
	switch outcome {
	case OutcomeWin:
		u.Balance += payout
		u.Wins++
		u.Rating += cfg.RatingWinDelta
	case OutcomeDraw:
		u.Balance += stake
	case OutcomeLose:
		u.Rating -= cfg.RatingLossDelta
		if u.Rating < 0 {
			u.Rating = 0
		}
	}

	u.GamesPlayed++
	u.GamesToday++
	u.LastGame = now
}

// AdmitDailyPlay проверяет дневную квоту перед стартом новой игровой
// сессии. Если с последнего сброса прошли сутки и более - счетчик
// обнуляется, граница сдвигается и допуск разрешен. Иначе допуск
// разрешен пока счетчик меньше лимита, при исчерпании -
// game.ErrDailyLimitExceeded. Возвращает признак выполненного сброса:
// вызывающая сторона обязана его зафиксировать в хранилище
func AdmitDailyPlay(u *model.User, now time.Time, cfg Config) (reset bool, err error) {
	if u.LastDailyReset.IsZero() || now.Sub(u.LastDailyReset) >= 24*time.Hour {
		u.GamesToday = 0
		u.LastDailyReset = now
		return true, nil
	}

	if u.GamesToday >= cfg.MaxDailyGames {
		return false, game.ErrDailyLimitExceeded
	}

	return false, nil
}
