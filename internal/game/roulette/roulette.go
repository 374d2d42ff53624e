package roulette

import (
	"errors"
	"strconv"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/rng"
)

// BetCategory - категория ставки рулетки
type BetCategory string

const (
	CategoryNumber BetCategory = "number"
	CategoryColor  BetCategory = "color"
	CategoryParity BetCategory = "parity"
	CategoryDozen  BetCategory = "dozen"
	CategoryHalf   BetCategory = "half"
)

// Multipliers - фиксированные кратности выплат по категориям
var Multipliers = map[BetCategory]int{
	CategoryNumber: 35,
	CategoryColor:  2,
	CategoryParity: 2,
	CategoryDozen:  3,
	CategoryHalf:   2,
}

// redNumbers - канонический набор из 18 красных номеров
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Bet - одна отложенная ставка: категория, селектор и размер
type Bet struct {
	Category BetCategory
	Value    string
	Stake    int
}

// NewBet валидирует и создает ставку. Селектор проверяется по категории:
// number - 0..36, color - red/black/green, parity - even/odd,
// dozen - 1..3, half - 1..2
func NewBet(category BetCategory, value string, stake int) (Bet, error) {
	if stake <= 0 {
		return Bet{}, game.ErrInsufficientStake
	}

	switch category {
	case CategoryNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 36 {
			return Bet{}, errors.New("invalid number selector")
		}
	case CategoryColor:
		if value != "red" && value != "black" && value != "green" {
			return Bet{}, errors.New("invalid color selector")
		}
	case CategoryParity:
		if value != "even" && value != "odd" {
			return Bet{}, errors.New("invalid parity selector")
		}
	case CategoryDozen:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 3 {
			return Bet{}, errors.New("invalid dozen selector")
		}
	case CategoryHalf:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 2 {
			return Bet{}, errors.New("invalid half selector")
		}
	default:
		return Bet{}, errors.New("unknown bet category")
	}

	return Bet{Category: category, Value: value, Stake: stake}, nil
}

// Pocket - классификация выпавшего номера. Ноль - зеленый,
// не принадлежит ни четности, ни дюжине, ни половине
type Pocket struct {
	Number int
	Color  string
	Parity string
	Dozen  int
	Half   int
}

// NewPocket классифицирует номер 0..36
func NewPocket(number int) Pocket {
	p := Pocket{Number: number}

	switch {
	case number == 0:
		p.Color = "green"
	case redNumbers[number]:
		p.Color = "red"
	default:
		p.Color = "black"
	}

	if number > 0 {
		if number%2 == 0 {
			p.Parity = "even"
		} else {
			p.Parity = "odd"
		}
		p.Dozen = (number-1)/12 + 1
		if number <= 18 {
			p.Half = 1
		} else {
			p.Half = 2
		}
	}

	return p
}

// Matches сообщает, выигрывает ли ставка на данном номере
func (b Bet) Matches(p Pocket) bool {
	switch b.Category {
	case CategoryNumber:
		n, _ := strconv.Atoi(b.Value)
		return n == p.Number
	case CategoryColor:
		return b.Value == p.Color
	case CategoryParity:
		return b.Value == p.Parity
	case CategoryDozen:
		n, _ := strconv.Atoi(b.Value)
		return p.Dozen != 0 && n == p.Dozen
	case CategoryHalf:
		n, _ := strconv.Atoi(b.Value)
		return p.Half != 0 && n == p.Half
	}
	return false
}

// Result - итог спина: выпавший номер, суммарная ставка раунда
// и суммарная выплата по всем выигравшим ставкам
type Result struct {
	Pocket     Pocket
	TotalStake int
	Payout     int
}

// Session - накапливающийся список ставок одного пользователя.
// Верхней границы на количество ставок нет
type Session struct {
	bets []Bet
}

func NewSession() *Session {
	return &Session{}
}

// Place добавляет уже валидированную ставку в список
func (s *Session) Place(bet Bet) {
	s.bets = append(s.bets, bet)
}

// Bets возвращает копию списка отложенных ставок
func (s *Session) Bets() []Bet {
	return append([]Bet(nil), s.bets...)
}

// TotalStake - сумма всех отложенных ставок
func (s *Session) TotalStake() int {
	total := 0
	for _, b := range s.bets {
		total += b.Stake
	}
	return total
}

// Spin разыгрывает один номер 0..36 и независимо оценивает по нему
// каждую отложенную ставку. Список ставок очищается безусловно,
// независимо от исхода. Пустой список - game.ErrNoPendingBets
func (s *Session) Spin(src rng.Source) (*Result, error) {
	if len(s.bets) == 0 {
		return nil, game.ErrNoPendingBets
	}

	pocket := NewPocket(src.Intn(37))

	res := &Result{
		Pocket:     pocket,
		TotalStake: s.TotalStake(),
	}
	for _, bet := range s.bets {
		if bet.Matches(pocket) {
			res.Payout += bet.Stake * Multipliers[bet.Category]
		}
	}

	s.bets = nil
	return res, nil
}
