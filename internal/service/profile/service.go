package profile

import (
	"context"

	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"
)

const defaultTopLimit = 10

type serv struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) service.ProfileService {
	return &serv{
		userRepo: userRepo,
	}
}

// Profile возвращает аккаунт пользователя
func (s *serv) Profile(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

// TopPlayers возвращает таблицу лидеров по рейтингу
func (s *serv) TopPlayers(ctx context.Context, limit int) ([]model.TopPlayer, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.userRepo.TopPlayers(ctx, limit)
}
