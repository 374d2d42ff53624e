package blackjack

import (
	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/deck"
	"casino_bot_backend/internal/game/rng"
)

// Phase - фаза сессии блэкджека. Из Playing возможен переход только
// в терминальные фазы, из терминальной фазы переходов нет
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseBust      Phase = "bust"
	PhaseBlackjack Phase = "blackjack"
	PhaseWon       Phase = "win"
	PhaseLost      Phase = "lose"
	PhaseDraw      Phase = "draw"
)

const (
	// dealerStand - жесткие 17: дилер добирает пока его сумма меньше
	dealerStand = 17

	// Кратности выплат (выплата включает возврат ставки)
	blackjackMult = 3
	winMult       = 2
)

// Session - сессия блэкджека одного пользователя: своя колода,
// рука игрока, рука дилера, ставка и фаза
type Session struct {
	deck   *deck.Deck
	player []deck.Card
	dealer []deck.Card
	bet    int
	phase  Phase
}

// NewSession создает сессию на свежей перетасованной колоде и сдает
// по две карты игроку и дилеру. Достаточность баланса проверяет
// вызывающая сторона до списания ставки, движок проверяет только bet > 0.
// Если сумма двух карт игрока равна 21 - сразу терминальная фаза Blackjack
func NewSession(bet int, src rng.Source) (*Session, error) {
	return NewSessionWithDeck(bet, deck.NewShuffled(src))
}

// NewSessionWithDeck - как NewSession, но на переданной колоде.
// Используется тестами для фиксированных раздач
func NewSessionWithDeck(bet int, d *deck.Deck) (*Session, error) {
	if bet <= 0 {
		return nil, game.ErrInsufficientStake
	}

	s := &Session{
		deck:  d,
		bet:   bet,
		phase: PhasePlaying,
	}

	// Раздача: две карты игроку, затем две дилеру
	for i := 0; i < 2; i++ {
		card, err := s.deck.Draw()
		if err != nil {
			return nil, err
		}
		s.player = append(s.player, card)
	}
	for i := 0; i < 2; i++ {
		card, err := s.deck.Draw()
		if err != nil {
			return nil, err
		}
		s.dealer = append(s.dealer, card)
	}

	if HandValue(s.player) == 21 {
		s.phase = PhaseBlackjack
	}

	return s, nil
}

// HandValue вычисляет сумму очков руки. Картинки стоят 10, туз сначала
// считается за 11; пока сумма превышает 21 и есть тузы, пересчитываемые
// в 1, тузы по одному переоцениваются. Результат не зависит от порядка карт
func HandValue(hand []deck.Card) int {
	value := 0
	aces := 0

	for _, card := range hand {
		switch card.Rank {
		case "J", "Q", "K":
			value += 10
		case "A":
			aces++
		default:
			// Ранги "2".."10" числовые
			value += rankValue(card.Rank)
		}
	}

	for i := 0; i < aces; i++ {
		if value+11 <= 21 {
			value += 11
		} else {
			value++
		}
	}

	return value
}

func rankValue(r deck.Rank) int {
	if r == "10" {
		return 10
	}
	return int(r[0] - '0')
}

// Hit добирает одну карту в руку игрока. Допустим только в фазе Playing.
// Сумма больше 21 переводит сессию в Bust, ставка сгорает
func (s *Session) Hit() (int, error) {
	if s.phase != PhasePlaying {
		return 0, game.ErrNoActiveSession
	}

	card, err := s.deck.Draw()
	if err != nil {
		return 0, err
	}
	s.player = append(s.player, card)

	total := HandValue(s.player)
	if total > 21 {
		s.phase = PhaseBust
	}

	return total, nil
}

// Stand завершает ход игрока. Дилер добирает до 17 и выше, после чего
// суммы сравниваются: перебор дилера или большая сумма игрока - Won,
// равенство - Draw, иначе - Lost. Допустим только в фазе Playing
func (s *Session) Stand() (playerTotal, dealerTotal int, err error) {
	if s.phase != PhasePlaying {
		return 0, 0, game.ErrNoActiveSession
	}

	playerTotal = HandValue(s.player)

	for HandValue(s.dealer) < dealerStand {
		card, err := s.deck.Draw()
		if err != nil {
			return 0, 0, err
		}
		s.dealer = append(s.dealer, card)
	}
	dealerTotal = HandValue(s.dealer)

	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		s.phase = PhaseWon
	case dealerTotal > playerTotal:
		s.phase = PhaseLost
	default:
		s.phase = PhaseDraw
	}

	return playerTotal, dealerTotal, nil
}

// Payout - выплата по текущей фазе. Включает возврат ставки:
// блэкджек - тройная ставка, победа - двойная, ничья - возврат ставки
func (s *Session) Payout() int {
	switch s.phase {
	case PhaseBlackjack:
		return s.bet * blackjackMult
	case PhaseWon:
		return s.bet * winMult
	case PhaseDraw:
		return s.bet
	default:
		return 0
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Terminal сообщает, достигла ли сессия терминальной фазы.
// Терминальная сессия подлежит удалению из реестра
func (s *Session) Terminal() bool {
	return s.phase != PhasePlaying
}

func (s *Session) Bet() int {
	return s.bet
}

// PlayerHand возвращает копию руки игрока
func (s *Session) PlayerHand() []deck.Card {
	return append([]deck.Card(nil), s.player...)
}

// DealerHand возвращает копию руки дилера
func (s *Session) DealerHand() []deck.Card {
	return append([]deck.Card(nil), s.dealer...)
}

// DealerUpcard - открытая карта дилера. Вторая карта остается
// скрытой до Stand
func (s *Session) DealerUpcard() deck.Card {
	return s.dealer[0]
}
