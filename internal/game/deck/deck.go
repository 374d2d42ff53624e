package deck

import (
	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/rng"
)

type Suit string

type Rank string

// Масти и ранги стандартной 52-карточной колоды
var (
	Suits = []Suit{"♠️", "♥️", "♣️", "♦️"}
	Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Card - неизменяемое значение карты. Идентичности за пределами
// пары (масть, ранг) нет
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// Deck - колода с выдачей без возврата. Верх колоды - конец среза
type Deck struct {
	cards []Card
}

// New создает колоду из переданных карт без перемешивания.
// Используется движками и тестами для фиксированного порядка раздачи
func New(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewShuffled создает полную колоду из 52 уникальных карт
// в случайной перестановке. Перетасовка мид-сессии не предусмотрена
func NewShuffled(src rng.Source) *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	// Тасование Фишера-Йетса на переданном источнике
	for i := len(cards) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{cards: cards}
}

// Draw снимает и возвращает верхнюю карту колоды.
// На исчерпанной колоде возвращает game.ErrEmptyDeck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, game.ErrEmptyDeck
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining - количество оставшихся в колоде карт
func (d *Deck) Remaining() int {
	return len(d.cards)
}
