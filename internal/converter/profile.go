package converter

import (
	dto "casino_bot_backend/internal/api/dto/profile"
	"casino_bot_backend/internal/model"
)

func ToProfileResponse(user *model.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Balance:     user.Balance,
		GamesPlayed: user.GamesPlayed,
		Wins:        user.Wins,
		Rating:      user.Rating,
		GamesToday:  user.GamesToday,
	}
}

func ToTopPlayersResponse(players []model.TopPlayer) []dto.TopPlayerResponse {
	result := make([]dto.TopPlayerResponse, len(players))
	for i, p := range players {
		result[i] = dto.TopPlayerResponse{
			Name:        p.Name,
			Rating:      p.Rating,
			Wins:        p.Wins,
			GamesPlayed: p.GamesPlayed,
		}
	}
	return result
}
