package blackjack

type StartRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, не больше баланса)
}

type StartResponse struct {
	PlayerHand  []string `json:"player_hand"`  // Рука игрока
	DealerHand  []string `json:"dealer_hand"`  // Открытая карта дилера + скрытая
	PlayerTotal int      `json:"player_total"` // Сумма руки игрока
	IsBlackjack bool     `json:"is_blackjack"` // Блэкджек с раздачи
	Payout      int      `json:"payout"`       // Выплата (0 если раунд не терминален)
	Balance     int      `json:"balance"`      // Баланс после списания/выплаты
}

type HitResponse struct {
	PlayerHand  []string `json:"player_hand"`  // Рука игрока
	PlayerTotal int      `json:"player_total"` // Сумма руки игрока
	Busted      bool     `json:"busted"`       // Перебор
}

type StandResponse struct {
	PlayerHand  []string `json:"player_hand"`  // Рука игрока
	DealerHand  []string `json:"dealer_hand"`  // Полностью открытая рука дилера
	PlayerTotal int      `json:"player_total"` // Сумма руки игрока
	DealerTotal int      `json:"dealer_total"` // Сумма руки дилера
	Outcome     string   `json:"outcome"`      // win / lose / draw
	Payout      int      `json:"payout"`       // Выплата (включает возврат ставки)
	Balance     int      `json:"balance"`      // Баланс после
}
