package moderation

import (
	"context"
	"time"

	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/repository"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	userRepo  repository.UserRepository
	modRepo   repository.ModerationRepository
	txManager trm.Manager
}

// NewModerationService создает сервис модерации: переключение флага
// блокировки плюс append-only журнал действий
func NewModerationService(
	userRepo repository.UserRepository,
	modRepo repository.ModerationRepository,
	txManager trm.Manager,
) service.ModerationService {
	return &serv{
		userRepo:  userRepo,
		modRepo:   modRepo,
		txManager: txManager,
	}
}

// Ban блокирует аккаунт и пишет запись в журнал модерации
// одной транзакцией
func (s *serv) Ban(ctx context.Context, moderatorID, userID int, reason string) error {
	return s.apply(ctx, moderatorID, userID, model.ModerationActionBan, reason, true)
}

// Unban снимает блокировку и пишет запись в журнал модерации
func (s *serv) Unban(ctx context.Context, moderatorID, userID int, reason string) error {
	return s.apply(ctx, moderatorID, userID, model.ModerationActionUnban, reason, false)
}

func (s *serv) apply(ctx context.Context, moderatorID, userID int, action, reason string, banned bool) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.SetBanned(txCtx, userID, banned); err != nil {
			return err
		}

		return s.modRepo.CreateLogEntry(txCtx, &model.ModerationLogEntry{
			ID:          uuid.NewString(),
			ModeratorID: moderatorID,
			UserID:      userID,
			Action:      action,
			Reason:      reason,
			CreatedAt:   time.Now(),
		})
	})
}
