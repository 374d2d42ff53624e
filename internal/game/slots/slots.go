package slots

import (
	"strings"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/rng"
)

const reels = 3

// Symbol - символ барабана с кратностью выплаты
type Symbol struct {
	Emoji      string
	Name       string
	Multiplier int
}

// DefaultSymbols - стандартная таблица из шести символов
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Emoji: "7️⃣", Name: "seven", Multiplier: 10},
		{Emoji: "🍒", Name: "cherry", Multiplier: 5},
		{Emoji: "🍋", Name: "lemon", Multiplier: 4},
		{Emoji: "🍊", Name: "orange", Multiplier: 3},
		{Emoji: "🫐", Name: "berry", Multiplier: 2},
		{Emoji: "🍎", Name: "apple", Multiplier: 2},
	}
}

// Result - итог одного спина
type Result struct {
	Symbols [reels]Symbol
	Payout  int
}

// Machine - слот-машина без состояния между спинами
type Machine struct {
	symbols []Symbol
}

func NewMachine(symbols []Symbol) *Machine {
	if len(symbols) == 0 {
		symbols = DefaultSymbols()
	}
	return &Machine{symbols: symbols}
}

// Spin независимо и равномерно разыгрывает три символа.
// Выигрыш только при трех одинаковых: выплата - ставка на кратность символа
func (m *Machine) Spin(bet int, src rng.Source) (*Result, error) {
	if bet <= 0 {
		return nil, game.ErrInsufficientStake
	}

	var res Result
	for i := 0; i < reels; i++ {
		res.Symbols[i] = m.symbols[src.Intn(len(m.symbols))]
	}

	if res.Symbols[0].Name == res.Symbols[1].Name && res.Symbols[1].Name == res.Symbols[2].Name {
		res.Payout = bet * res.Symbols[0].Multiplier
	}

	return &res, nil
}

// AnimationFrames генерирует n косметических промежуточных кадров
// для пейсинга отображения. На итоговый розыгрыш не влияют
func (m *Machine) AnimationFrames(n int, src rng.Source) []string {
	frames := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts := make([]string, reels)
		for j := 0; j < reels; j++ {
			parts[j] = m.symbols[src.Intn(len(m.symbols))].Emoji
		}
		frames = append(frames, strings.Join(parts, " "))
	}
	return frames
}
