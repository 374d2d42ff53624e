package economy

import (
	"errors"
	"testing"
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/model"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newUser() *model.User {
	return &model.User{
		ID:             1,
		Balance:        900, // ставка 100 уже списана при размещении
		Rating:         1000,
		LastDailyReset: now.Add(-time.Hour),
	}
}

func TestApplyRoundResult_Win(t *testing.T) {
	u := newUser()
	ApplyRoundResult(u, 200, 100, OutcomeWin, now, DefaultConfig())

	if u.Balance != 1100 {
		t.Errorf("Balance = %d, want 1100", u.Balance)
	}
	if u.Wins != 1 {
		t.Errorf("Wins = %d, want 1", u.Wins)
	}
	if u.Rating != 1025 {
		t.Errorf("Rating = %d, want 1025", u.Rating)
	}
	if u.GamesPlayed != 1 || u.GamesToday != 1 {
		t.Errorf("counters = (%d, %d), want (1, 1)", u.GamesPlayed, u.GamesToday)
	}
	if !u.LastGame.Equal(now) {
		t.Errorf("LastGame = %v, want %v", u.LastGame, now)
	}
}

func TestApplyRoundResult_Draw(t *testing.T) {
	u := newUser()
	ApplyRoundResult(u, 0, 100, OutcomeDraw, now, DefaultConfig())

	// Возврат ставки, рейтинг и победы не меняются
	if u.Balance != 1000 {
		t.Errorf("Balance = %d, want 1000", u.Balance)
	}
	if u.Rating != 1000 {
		t.Errorf("Rating = %d, want 1000", u.Rating)
	}
	if u.Wins != 0 {
		t.Errorf("Wins = %d, want 0", u.Wins)
	}
}

func TestApplyRoundResult_Lose(t *testing.T) {
	u := newUser()
	ApplyRoundResult(u, 0, 100, OutcomeLose, now, DefaultConfig())

	if u.Balance != 900 {
		t.Errorf("Balance = %d, want 900", u.Balance)
	}
	if u.Rating != 985 {
		t.Errorf("Rating = %d, want 985", u.Rating)
	}
	if u.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", u.GamesPlayed)
	}
}

func TestApplyRoundResult_RatingFloor(t *testing.T) {
	u := newUser()
	u.Rating = 10
	ApplyRoundResult(u, 0, 100, OutcomeLose, now, DefaultConfig())

	if u.Rating != 0 {
		t.Errorf("Rating = %d, want 0 (floor)", u.Rating)
	}
}

func TestAdmitDailyPlay_UnderLimit(t *testing.T) {
	u := newUser()
	u.GamesToday = 42

	reset, err := AdmitDailyPlay(u, now, DefaultConfig())
	if err != nil {
		t.Fatalf("AdmitDailyPlay: %v", err)
	}
	if reset {
		t.Error("reset = true, сутки еще не прошли")
	}
	if u.GamesToday != 42 {
		t.Errorf("GamesToday = %d, want 42", u.GamesToday)
	}
}

func TestAdmitDailyPlay_LimitExhausted(t *testing.T) {
	u := newUser()
	u.GamesToday = DefaultConfig().MaxDailyGames

	_, err := AdmitDailyPlay(u, now, DefaultConfig())
	if !errors.Is(err, game.ErrDailyLimitExceeded) {
		t.Fatalf("err = %v, want ErrDailyLimitExceeded", err)
	}
}

func TestAdmitDailyPlay_ResetAfterDay(t *testing.T) {
	u := newUser()
	u.GamesToday = DefaultConfig().MaxDailyGames
	u.LastDailyReset = now.Add(-25 * time.Hour)

	reset, err := AdmitDailyPlay(u, now, DefaultConfig())
	if err != nil {
		t.Fatalf("AdmitDailyPlay: %v", err)
	}
	if !reset {
		t.Fatal("reset = false, want true после суток")
	}
	if u.GamesToday != 0 {
		t.Errorf("GamesToday = %d, want 0", u.GamesToday)
	}
	if !u.LastDailyReset.Equal(now) {
		t.Errorf("LastDailyReset = %v, want %v", u.LastDailyReset, now)
	}
}

func TestAdmitDailyPlay_ExactBoundary(t *testing.T) {
	u := newUser()
	u.GamesToday = 5
	u.LastDailyReset = now.Add(-24 * time.Hour)

	reset, err := AdmitDailyPlay(u, now, DefaultConfig())
	if err != nil {
		t.Fatalf("AdmitDailyPlay: %v", err)
	}
	if !reset {
		t.Error("reset = false, want true на границе в 24 часа")
	}
}

func TestAdmitDailyPlay_ZeroReset(t *testing.T) {
	// Свежий аккаунт без зафиксированной границы
	u := &model.User{ID: 2}

	reset, err := AdmitDailyPlay(u, now, DefaultConfig())
	if err != nil {
		t.Fatalf("AdmitDailyPlay: %v", err)
	}
	if !reset {
		t.Error("reset = false, want true для нулевой границы")
	}
}

func TestAdmitDailyPlay_FullQuota(t *testing.T) {
	u := newUser()
	cfg := DefaultConfig()

	for i := 0; i < cfg.MaxDailyGames; i++ {
		if _, err := AdmitDailyPlay(u, now, cfg); err != nil {
			t.Fatalf("admit #%d: %v", i+1, err)
		}
		ApplyRoundResult(u, 0, 10, OutcomeLose, now, cfg)
	}

	if _, err := AdmitDailyPlay(u, now, cfg); !errors.Is(err, game.ErrDailyLimitExceeded) {
		t.Fatalf("admit #%d: err = %v, want ErrDailyLimitExceeded", cfg.MaxDailyGames+1, err)
	}
}
