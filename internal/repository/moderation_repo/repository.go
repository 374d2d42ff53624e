package moderation_repo

import (
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "moderation_logs"
	colID          = "id"
	colModeratorID = "moderator_id"
	colUserID      = "user_id"
	colAction      = "action"
	colReason      = "reason"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewModerationRepository(dbc *pgxpool.Pool) repository.ModerationRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateLogEntry - добавляет запись в журнал модерации.
// Журнал append-only, записи не изменяются
func (r *repo) CreateLogEntry(ctx context.Context, entry *model.ModerationLogEntry) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colModeratorID, colUserID, colAction, colReason, colCreatedAt).
		Values(entry.ID, entry.ModeratorID, entry.UserID, entry.Action, entry.Reason, entry.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
