package transaction_repo

import (
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "transactions"
	colID        = "id"
	colUserID    = "user_id"
	colGameType  = "game_type"
	colBetAmount = "bet_amount"
	colWinAmount = "win_amount"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTransaction - записывает транзакцию раунда в журнал.
// Одна строка на каждый разрешенный раунд
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colGameType, colBetAmount, colWinAmount, colCreatedAt).
		Values(tx.ID, tx.UserID, tx.GameType, tx.BetAmount, tx.WinAmount, tx.CreatedAt).
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
