package service

import (
	"casino_bot_backend/internal/model"
	"context"
	"errors"
)

// ErrAccountBanned - забаненный аккаунт отклоняется до любого
// обращения к игровому движку
var ErrAccountBanned = errors.New("account is banned")

type BlackjackService interface {
	Start(ctx context.Context, userID, bet int) (*model.BlackjackStartResult, error)
	Hit(ctx context.Context, userID int) (*model.BlackjackHitResult, error)
	Stand(ctx context.Context, userID int) (*model.BlackjackStandResult, error)
}

type RouletteService interface {
	PlaceBet(ctx context.Context, userID int, category, value string, stake int) (*model.RouletteBetAck, error)
	Spin(ctx context.Context, userID int) (*model.RouletteSpinResult, error)
}

type SlotsService interface {
	Spin(ctx context.Context, userID, bet int) (*model.SlotsSpinResult, error)
}

type ProfileService interface {
	Profile(ctx context.Context, userID int) (*model.User, error)
	TopPlayers(ctx context.Context, limit int) ([]model.TopPlayer, error)
}

type ModerationService interface {
	Ban(ctx context.Context, moderatorID, userID int, reason string) error
	Unban(ctx context.Context, moderatorID, userID int, reason string) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
