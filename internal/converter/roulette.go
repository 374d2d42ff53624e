package converter

import (
	dto "casino_bot_backend/internal/api/dto/roulette"
	"casino_bot_backend/internal/model"
)

func ToRouletteBetResponse(res model.RouletteBetAck) dto.BetResponse {
	return dto.BetResponse{
		BetCount:   res.BetCount,
		TotalStake: res.TotalStake,
		Balance:    res.Balance,
	}
}

func ToRouletteSpinResponse(res model.RouletteSpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Number:  res.Number,
		Color:   res.Color,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}
