package model

// RouletteBetAck - подтверждение принятой ставки
type RouletteBetAck struct {
	BetCount   int
	TotalStake int
	Balance    int
}

// RouletteSpinResult - итог спина рулетки
type RouletteSpinResult struct {
	Number  int
	Color   string
	Payout  int
	Balance int
}
