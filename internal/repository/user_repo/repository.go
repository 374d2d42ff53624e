package user_repo

import (
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/repository"
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table               = "users"
	colID               = "id"
	colName             = "name"
	colLogin            = "login"
	colPasswordHash     = "password_hash"
	colBalance          = "balance"
	colGamesPlayed      = "games_played"
	colWins             = "wins"
	colRating           = "rating"
	colGamesToday       = "games_today"
	colLastDailyReset   = "last_daily_reset"
	colLastGame         = "last_game"
	colIsBanned         = "is_banned"
	colRegistrationDate = "registration_date"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает новый аккаунт в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colBalance, colRating,
			colGamesToday, colLastDailyReset, colRegistrationDate).
		Values(user.Name, user.Login, user.Password, user.Balance, user.Rating,
			user.GamesToday, user.LastDailyReset, user.RegistrationDate).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает аккаунт по логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getBy(ctx, sq.Eq{colLogin: login})
}

// GetUser - возвращает аккаунт по ID
func (r *repo) GetUser(ctx context.Context, id int) (*model.User, error) {
	return r.getBy(ctx, sq.Eq{colID: id})
}

func (r *repo) getBy(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colLogin, colPasswordHash, colBalance,
		colGamesPlayed, colWins, colRating, colGamesToday, colLastDailyReset,
		colLastGame, colIsBanned, colRegistrationDate).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var lastGame *time.Time
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.Name, &user.Login, &user.Password, &user.Balance,
		&user.GamesPlayed, &user.Wins, &user.Rating, &user.GamesToday,
		&user.LastDailyReset, &lastGame, &user.IsBanned, &user.RegistrationDate,
	)
	if err != nil {
		return nil, err
	}

	if lastGame != nil {
		user.LastGame = *lastGame
	}

	return &user, nil
}

// UpdateAccountState - записывает поля аккаунта, которые мутирует
// экономика: баланс, статистику, рейтинг и счетчики дневной квоты.
// Одним UPDATE, чтобы итог раунда применялся атомарно
func (r *repo) UpdateAccountState(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, user.Balance).
		Set(colGamesPlayed, user.GamesPlayed).
		Set(colWins, user.Wins).
		Set(colRating, user.Rating).
		Set(colGamesToday, user.GamesToday).
		Set(colLastDailyReset, user.LastDailyReset).
		Where(sq.Eq{colID: user.ID}).
		PlaceholderFormat(sq.Dollar)

	if !user.LastGame.IsZero() {
		query = query.Set(colLastGame, user.LastGame)
	}

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

// SetBanned - переключает флаг блокировки аккаунта
func (r *repo) SetBanned(ctx context.Context, id int, banned bool) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colIsBanned, banned).
		Where(sq.Eq{colID: id}).
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

// TopPlayers - таблица лидеров по убыванию рейтинга.
// Забаненные аккаунты не участвуют
func (r *repo) TopPlayers(ctx context.Context, limit int) ([]model.TopPlayer, error) {
	// Формируем запрос
	query := sq.Select(colName, colRating, colWins, colGamesPlayed).
		From(table).
		Where(sq.Eq{colIsBanned: false}).
		OrderBy(colRating + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []model.TopPlayer
	for rows.Next() {
		var p model.TopPlayer
		if err := rows.Scan(&p.Name, &p.Rating, &p.Wins, &p.GamesPlayed); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}
