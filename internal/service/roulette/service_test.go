package roulette

import (
	"context"
	"errors"
	"testing"
	"time"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/registry"
	"casino_bot_backend/internal/model"
	"casino_bot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// fixedSource всегда выдает одно и то же значение
type fixedSource struct {
	n int
}

func (s fixedSource) Intn(int) int { return s.n }

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[int]*model.User
}

func newUserRepoStub(users ...*model.User) *userRepoStub {
	r := &userRepoStub{users: make(map[int]*model.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *userRepoStub) CreateUser(_ context.Context, u *model.User) (int, error) {
	id := len(r.users) + 1
	cp := *u
	cp.ID = id
	r.users[id] = &cp
	return id, nil
}

func (r *userRepoStub) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *userRepoStub) GetUser(_ context.Context, id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *userRepoStub) UpdateAccountState(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *userRepoStub) SetBanned(_ context.Context, id int, banned bool) error {
	r.users[id].IsBanned = banned
	return nil
}

func (r *userRepoStub) TopPlayers(_ context.Context, _ int) ([]model.TopPlayer, error) {
	return nil, nil
}

type txRepoStub struct {
	entries []*model.Transaction
}

func (r *txRepoStub) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	r.entries = append(r.entries, tx)
	return nil
}

func newTestService(users *userRepoStub, txs *txRepoStub, src fixedSource) service.RouletteService {
	return NewRouletteService(
		users,
		txs,
		registry.NewUserLocks(),
		txManagerStub{},
		economy.DefaultConfig(),
		src,
	)
}

func player() *model.User {
	return &model.User{
		ID:             1,
		Name:           "alice",
		Balance:        1000,
		Rating:         1000,
		LastDailyReset: time.Now().Add(-time.Hour),
	}
}

func TestPlaceBet_DeductsStake(t *testing.T) {
	users := newUserRepoStub(player())
	s := newTestService(users, &txRepoStub{}, fixedSource{n: 14})

	ack, err := s.PlaceBet(context.Background(), 1, "color", "red", 50)
	if err != nil {
		t.Fatalf("PlaceBet(): %v", err)
	}

	if ack.BetCount != 1 || ack.TotalStake != 50 || ack.Balance != 950 {
		t.Errorf("ack = %+v, want {1 50 950}", ack)
	}

	// Вторая ставка накапливается в том же раунде
	ack, err = s.PlaceBet(context.Background(), 1, "number", "5", 30)
	if err != nil {
		t.Fatalf("second PlaceBet(): %v", err)
	}
	if ack.BetCount != 2 || ack.TotalStake != 80 || ack.Balance != 920 {
		t.Errorf("ack = %+v, want {2 80 920}", ack)
	}

	stored, _ := users.GetUser(context.Background(), 1)
	if stored.Balance != 920 {
		t.Errorf("stored balance = %d, want 920", stored.Balance)
	}
}

func TestPlaceBet_InvalidSelector(t *testing.T) {
	users := newUserRepoStub(player())
	s := newTestService(users, &txRepoStub{}, fixedSource{n: 0})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "blue", 50); err == nil {
		t.Fatal("PlaceBet() with invalid selector: err = nil")
	}

	// Валидация до списания
	stored, _ := users.GetUser(context.Background(), 1)
	if stored.Balance != 1000 {
		t.Errorf("stored balance = %d, want 1000", stored.Balance)
	}
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	users := newUserRepoStub(player())
	s := newTestService(users, &txRepoStub{}, fixedSource{n: 0})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 5000); !errors.Is(err, game.ErrInsufficientStake) {
		t.Fatalf("PlaceBet(): err = %v, want ErrInsufficientStake", err)
	}

	// Раунд не открыт
	if _, err := s.Spin(context.Background(), 1); !errors.Is(err, game.ErrNoPendingBets) {
		t.Errorf("Spin(): err = %v, want ErrNoPendingBets", err)
	}
}

func TestPlaceBet_Banned(t *testing.T) {
	u := player()
	u.IsBanned = true
	s := newTestService(newUserRepoStub(u), &txRepoStub{}, fixedSource{n: 0})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 50); !errors.Is(err, service.ErrAccountBanned) {
		t.Fatalf("PlaceBet(): err = %v, want ErrAccountBanned", err)
	}
}

func TestSpin_BannedMidRound(t *testing.T) {
	users := newUserRepoStub(player())
	txs := &txRepoStub{}
	s := newTestService(users, txs, fixedSource{n: 14})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 50); err != nil {
		t.Fatalf("PlaceBet(): %v", err)
	}

	// Бан после принятой ставки: спин отклоняется,
	// отложенные ставки не потребляются
	users.users[1].IsBanned = true

	if _, err := s.Spin(context.Background(), 1); !errors.Is(err, service.ErrAccountBanned) {
		t.Fatalf("Spin() while banned: err = %v, want ErrAccountBanned", err)
	}
	if len(txs.entries) != 0 {
		t.Errorf("transactions = %d, want 0", len(txs.entries))
	}

	// После разблокировки замороженный раунд разрешается обычным путем
	users.users[1].IsBanned = false
	res, err := s.Spin(context.Background(), 1)
	if err != nil {
		t.Fatalf("Spin() after unban: %v", err)
	}
	if res.Payout != 100 || res.Balance != 1050 {
		t.Errorf("payout/balance = %d/%d, want 100/1050", res.Payout, res.Balance)
	}
}

func TestPlaceBet_DailyLimitOnNewRound(t *testing.T) {
	u := player()
	u.GamesToday = economy.DefaultConfig().MaxDailyGames
	s := newTestService(newUserRepoStub(u), &txRepoStub{}, fixedSource{n: 0})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 50); !errors.Is(err, game.ErrDailyLimitExceeded) {
		t.Fatalf("PlaceBet(): err = %v, want ErrDailyLimitExceeded", err)
	}
}

func TestSpin_ResolvesRound(t *testing.T) {
	users := newUserRepoStub(player())
	txs := &txRepoStub{}
	// 14 - красное четное
	s := newTestService(users, txs, fixedSource{n: 14})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 50); err != nil {
		t.Fatalf("PlaceBet(): %v", err)
	}

	res, err := s.Spin(context.Background(), 1)
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}

	if res.Number != 14 || res.Color != "red" {
		t.Errorf("result = %d %s, want 14 red", res.Number, res.Color)
	}
	// Выплата 50*2 на баланс 950
	if res.Payout != 100 || res.Balance != 1050 {
		t.Errorf("payout/balance = %d/%d, want 100/1050", res.Payout, res.Balance)
	}

	stored, _ := users.GetUser(context.Background(), 1)
	if stored.Wins != 1 || stored.Rating != 1025 {
		t.Errorf("wins/rating = %d/%d, want 1/1025", stored.Wins, stored.Rating)
	}
	if stored.GamesPlayed != 1 || stored.GamesToday != 1 {
		t.Errorf("counters = (%d, %d), want (1, 1)", stored.GamesPlayed, stored.GamesToday)
	}

	if len(txs.entries) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs.entries))
	}
	if tx := txs.entries[0]; tx.GameType != "roulette" || tx.BetAmount != 50 || tx.WinAmount != 100 {
		t.Errorf("transaction = %+v, want roulette/50/100", tx)
	}

	// Ставки потреблены спином
	if _, err := s.Spin(context.Background(), 1); !errors.Is(err, game.ErrNoPendingBets) {
		t.Errorf("second Spin(): err = %v, want ErrNoPendingBets", err)
	}
}

func TestSpin_LosingRound(t *testing.T) {
	users := newUserRepoStub(player())
	txs := &txRepoStub{}
	// 10 - черное, ставка на красное проигрывает
	s := newTestService(users, txs, fixedSource{n: 10})

	if _, err := s.PlaceBet(context.Background(), 1, "color", "red", 50); err != nil {
		t.Fatalf("PlaceBet(): %v", err)
	}

	res, err := s.Spin(context.Background(), 1)
	if err != nil {
		t.Fatalf("Spin(): %v", err)
	}

	if res.Payout != 0 || res.Balance != 950 {
		t.Errorf("payout/balance = %d/%d, want 0/950", res.Payout, res.Balance)
	}

	stored, _ := users.GetUser(context.Background(), 1)
	if stored.Rating != 985 {
		t.Errorf("rating = %d, want 985", stored.Rating)
	}
}

func TestSpin_NoBets(t *testing.T) {
	s := newTestService(newUserRepoStub(player()), &txRepoStub{}, fixedSource{n: 0})

	if _, err := s.Spin(context.Background(), 1); !errors.Is(err, game.ErrNoPendingBets) {
		t.Fatalf("Spin(): err = %v, want ErrNoPendingBets", err)
	}
}
