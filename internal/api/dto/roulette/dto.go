package roulette

type BetRequest struct {
	Category string `json:"category"` // number / color / parity / dozen / half
	Value    string `json:"value"`    // Селектор категории
	Stake    int    `json:"stake"`    // Размер ставки
}

type BetResponse struct {
	BetCount   int `json:"bet_count"`   // Количество отложенных ставок
	TotalStake int `json:"total_stake"` // Сумма отложенных ставок
	Balance    int `json:"balance"`     // Баланс после списания
}

type SpinResponse struct {
	Number  int    `json:"number"`  // Выпавший номер 0-36
	Color   string `json:"color"`   // red / black / green
	Payout  int    `json:"payout"`  // Суммарная выплата по всем ставкам
	Balance int    `json:"balance"` // Баланс после
}
