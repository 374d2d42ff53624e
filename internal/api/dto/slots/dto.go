package slots

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки
}

type SpinResponse struct {
	Symbols []string `json:"symbols"` // Три выпавших символа
	Frames  []string `json:"frames"`  // Косметические кадры анимации
	Payout  int      `json:"payout"`  // Выплата (0 если символы не совпали)
	Balance int      `json:"balance"` // Баланс после
}
