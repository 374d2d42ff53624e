package repository

import (
	"casino_bot_backend/internal/model"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)

	UpdateAccountState(ctx context.Context, user *model.User) error
	SetBanned(ctx context.Context, id int, banned bool) error

	TopPlayers(ctx context.Context, limit int) ([]model.TopPlayer, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
}

type ModerationRepository interface {
	CreateLogEntry(ctx context.Context, entry *model.ModerationLogEntry) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}
