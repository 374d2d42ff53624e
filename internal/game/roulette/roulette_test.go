package roulette

import (
	"errors"
	"strconv"
	"testing"

	"casino_bot_backend/internal/game"
)

// fixedSource всегда выдает одно и то же значение
type fixedSource struct {
	n int
}

func (s fixedSource) Intn(int) int {
	return s.n
}

func TestNewBet_Validation(t *testing.T) {
	tests := []struct {
		name     string
		category BetCategory
		value    string
		stake    int
		wantErr  bool
	}{
		{"number ok", CategoryNumber, "17", 10, false},
		{"number zero ok", CategoryNumber, "0", 10, false},
		{"number out of range", CategoryNumber, "37", 10, true},
		{"number not numeric", CategoryNumber, "red", 10, true},
		{"color ok", CategoryColor, "red", 10, false},
		{"color green ok", CategoryColor, "green", 10, false},
		{"color unknown", CategoryColor, "blue", 10, true},
		{"parity ok", CategoryParity, "even", 10, false},
		{"parity unknown", CategoryParity, "zero", 10, true},
		{"dozen ok", CategoryDozen, "3", 10, false},
		{"dozen out of range", CategoryDozen, "4", 10, true},
		{"half ok", CategoryHalf, "2", 10, false},
		{"half out of range", CategoryHalf, "3", 10, true},
		{"unknown category", BetCategory("street"), "1", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBet(tt.category, tt.value, tt.stake)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBet(%v, %q, %d): err = %v, wantErr %v",
					tt.category, tt.value, tt.stake, err, tt.wantErr)
			}
		})
	}
}

func TestNewBet_ZeroStake(t *testing.T) {
	_, err := NewBet(CategoryNumber, "17", 0)
	if !errors.Is(err, game.ErrInsufficientStake) {
		t.Fatalf("stake 0: err = %v, want ErrInsufficientStake", err)
	}
}

func TestNewPocket(t *testing.T) {
	tests := []struct {
		number int
		want   Pocket
	}{
		{0, Pocket{Number: 0, Color: "green", Parity: "", Dozen: 0, Half: 0}},
		{1, Pocket{Number: 1, Color: "red", Parity: "odd", Dozen: 1, Half: 1}},
		{2, Pocket{Number: 2, Color: "black", Parity: "even", Dozen: 1, Half: 1}},
		{12, Pocket{Number: 12, Color: "red", Parity: "even", Dozen: 1, Half: 1}},
		{13, Pocket{Number: 13, Color: "black", Parity: "odd", Dozen: 2, Half: 1}},
		{18, Pocket{Number: 18, Color: "red", Parity: "even", Dozen: 2, Half: 1}},
		{19, Pocket{Number: 19, Color: "red", Parity: "odd", Dozen: 2, Half: 2}},
		{25, Pocket{Number: 25, Color: "red", Parity: "odd", Dozen: 3, Half: 2}},
		{36, Pocket{Number: 36, Color: "red", Parity: "even", Dozen: 3, Half: 2}},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.number), func(t *testing.T) {
			if got := NewPocket(tt.number); got != tt.want {
				t.Errorf("NewPocket(%d) = %+v, want %+v", tt.number, got, tt.want)
			}
		})
	}
}

func TestSpin_NumberWin(t *testing.T) {
	s := NewSession()
	bet, err := NewBet(CategoryNumber, "17", 10)
	if err != nil {
		t.Fatalf("NewBet: %v", err)
	}
	s.Place(bet)

	res, err := s.Spin(fixedSource{n: 17})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}
	if res.Pocket.Number != 17 {
		t.Fatalf("pocket number = %d, want 17", res.Pocket.Number)
	}
	if res.Payout != 350 {
		t.Errorf("Payout = %d, want 350", res.Payout)
	}
	if res.TotalStake != 10 {
		t.Errorf("TotalStake = %d, want 10", res.TotalStake)
	}
}

func TestSpin_MultipleBets(t *testing.T) {
	// Выпало 14: красное, четное, вторая дюжина, первая половина.
	// Ставки на red и even выигрывают, на number 5 - нет
	s := NewSession()
	for _, b := range []struct {
		category BetCategory
		value    string
		stake    int
	}{
		{CategoryColor, "red", 20},
		{CategoryParity, "even", 30},
		{CategoryNumber, "5", 40},
	} {
		bet, err := NewBet(b.category, b.value, b.stake)
		if err != nil {
			t.Fatalf("NewBet(%v, %q): %v", b.category, b.value, err)
		}
		s.Place(bet)
	}

	if got := s.TotalStake(); got != 90 {
		t.Fatalf("TotalStake() = %d, want 90", got)
	}

	res, err := s.Spin(fixedSource{n: 14})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}

	// 20*2 + 30*2
	if res.Payout != 100 {
		t.Errorf("Payout = %d, want 100", res.Payout)
	}
}

func TestSpin_ZeroPocket(t *testing.T) {
	// Ноль не принадлежит ни четности, ни дюжине, ни половине,
	// выигрывают только ставки на green и на сам ноль
	s := NewSession()
	for _, b := range []struct {
		category BetCategory
		value    string
	}{
		{CategoryColor, "green"},
		{CategoryColor, "red"},
		{CategoryParity, "even"},
		{CategoryParity, "odd"},
		{CategoryDozen, "1"},
		{CategoryHalf, "1"},
		{CategoryNumber, "0"},
	} {
		bet, err := NewBet(b.category, b.value, 10)
		if err != nil {
			t.Fatalf("NewBet(%v, %q): %v", b.category, b.value, err)
		}
		s.Place(bet)
	}

	res, err := s.Spin(fixedSource{n: 0})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}

	// green 10*2 + number 10*35
	if res.Payout != 370 {
		t.Errorf("Payout = %d, want 370", res.Payout)
	}
}

func TestSpin_ClearsBets(t *testing.T) {
	s := NewSession()
	bet, err := NewBet(CategoryColor, "black", 10)
	if err != nil {
		t.Fatalf("NewBet: %v", err)
	}
	s.Place(bet)

	if _, err := s.Spin(fixedSource{n: 4}); err != nil {
		t.Fatalf("first Spin(): %v", err)
	}

	if got := len(s.Bets()); got != 0 {
		t.Fatalf("bets after spin = %d, want 0", got)
	}
	if _, err := s.Spin(fixedSource{n: 4}); !errors.Is(err, game.ErrNoPendingBets) {
		t.Errorf("second Spin(): err = %v, want ErrNoPendingBets", err)
	}
}

func TestSpin_NoBets(t *testing.T) {
	s := NewSession()
	if _, err := s.Spin(fixedSource{n: 10}); !errors.Is(err, game.ErrNoPendingBets) {
		t.Fatalf("Spin() without bets: err = %v, want ErrNoPendingBets", err)
	}
}
