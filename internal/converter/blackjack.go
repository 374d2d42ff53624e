package converter

import (
	dto "casino_bot_backend/internal/api/dto/blackjack"
	"casino_bot_backend/internal/game/deck"
	"casino_bot_backend/internal/model"
)

// hiddenCard - плейсхолдер скрытой карты дилера до Stand
const hiddenCard = "🂠"

func toCardStrings(cards []deck.Card) []string {
	result := make([]string, len(cards))
	for i, c := range cards {
		result[i] = c.String()
	}
	return result
}

func ToBlackjackStartResponse(res model.BlackjackStartResult) dto.StartResponse {
	return dto.StartResponse{
		PlayerHand:  toCardStrings(res.PlayerHand),
		DealerHand:  []string{res.DealerUpcard.String(), hiddenCard},
		PlayerTotal: res.PlayerTotal,
		IsBlackjack: res.IsBlackjack,
		Payout:      res.Payout,
		Balance:     res.Balance,
	}
}

func ToBlackjackHitResponse(res model.BlackjackHitResult) dto.HitResponse {
	return dto.HitResponse{
		PlayerHand:  toCardStrings(res.PlayerHand),
		PlayerTotal: res.PlayerTotal,
		Busted:      res.Busted,
	}
}

func ToBlackjackStandResponse(res model.BlackjackStandResult) dto.StandResponse {
	return dto.StandResponse{
		PlayerHand:  toCardStrings(res.PlayerHand),
		DealerHand:  toCardStrings(res.DealerHand),
		PlayerTotal: res.PlayerTotal,
		DealerTotal: res.DealerTotal,
		Outcome:     res.Outcome,
		Payout:      res.Payout,
		Balance:     res.Balance,
	}
}
