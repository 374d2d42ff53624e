package converter

import (
	dto "casino_bot_backend/internal/api/dto/slots"
	"casino_bot_backend/internal/model"
)

func ToSlotsSpinResponse(res model.SlotsSpinResult) dto.SpinResponse {
	symbols := make([]string, 0, len(res.Symbols))
	for _, s := range res.Symbols {
		symbols = append(symbols, s.Emoji)
	}

	return dto.SpinResponse{
		Symbols: symbols,
		Frames:  res.Frames,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}
