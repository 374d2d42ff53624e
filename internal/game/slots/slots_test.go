package slots

import (
	"errors"
	"testing"

	"casino_bot_backend/internal/game"
)

// seqSource выдает заранее заданные значения по кругу
type seqSource struct {
	seq []int
	i   int
}

func (s *seqSource) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

func TestSpin_ThreeOfAKind(t *testing.T) {
	m := NewMachine(DefaultSymbols())

	// Индекс 1 - cherry с кратностью 5
	res, err := m.Spin(50, &seqSource{seq: []int{1, 1, 1}})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}

	for i, s := range res.Symbols {
		if s.Name != "cherry" {
			t.Fatalf("Symbols[%d] = %q, want cherry", i, s.Name)
		}
	}
	if res.Payout != 250 {
		t.Errorf("Payout = %d, want 250", res.Payout)
	}
}

func TestSpin_NoMatch(t *testing.T) {
	m := NewMachine(DefaultSymbols())

	res, err := m.Spin(50, &seqSource{seq: []int{0, 1, 2}})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}
	if res.Payout != 0 {
		t.Errorf("Payout = %d, want 0", res.Payout)
	}
}

func TestSpin_TwoOfAKind(t *testing.T) {
	// Две вишни из трех не оплачиваются
	m := NewMachine(DefaultSymbols())

	res, err := m.Spin(50, &seqSource{seq: []int{1, 1, 3}})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}
	if res.Payout != 0 {
		t.Errorf("Payout = %d, want 0", res.Payout)
	}
}

func TestSpin_InvalidBet(t *testing.T) {
	m := NewMachine(nil)

	for _, bet := range []int{0, -10} {
		if _, err := m.Spin(bet, &seqSource{seq: []int{0}}); !errors.Is(err, game.ErrInsufficientStake) {
			t.Errorf("Spin(%d): err = %v, want ErrInsufficientStake", bet, err)
		}
	}
}

func TestNewMachine_DefaultsOnEmpty(t *testing.T) {
	m := NewMachine(nil)

	res, err := m.Spin(10, &seqSource{seq: []int{0, 0, 0}})
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}
	// Индекс 0 стандартной таблицы - seven с кратностью 10
	if res.Symbols[0].Name != "seven" || res.Payout != 100 {
		t.Errorf("Spin() = %+v, want three sevens with payout 100", res)
	}
}

func TestAnimationFrames(t *testing.T) {
	m := NewMachine(DefaultSymbols())
	src := &seqSource{seq: []int{0, 1, 2, 3, 4, 5}}

	frames := m.AnimationFrames(3, src)
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}
	for i, f := range frames {
		if f == "" {
			t.Errorf("frame %d is empty", i)
		}
	}
}
