package model

import "casino_bot_backend/internal/game/deck"

// BlackjackStartResult - итог старта раунда. При блэкджеке с раздачи
// раунд терминален, вторая карта дилера в ответе скрыта всегда
type BlackjackStartResult struct {
	PlayerHand   []deck.Card
	DealerUpcard deck.Card
	PlayerTotal  int
	IsBlackjack  bool
	Payout       int
	Balance      int
}

// BlackjackHitResult - итог добора карты. Баланс не возвращается:
// до терминальной фазы экономика не трогается
type BlackjackHitResult struct {
	PlayerHand  []deck.Card
	PlayerTotal int
	Busted      bool
}

// BlackjackStandResult - итог завершения раунда после Stand
type BlackjackStandResult struct {
	PlayerHand  []deck.Card
	DealerHand  []deck.Card
	PlayerTotal int
	DealerTotal int
	Outcome     string
	Payout      int
	Balance     int
}
