package moderation

import (
	"context"
	"errors"
	"testing"

	"casino_bot_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

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

func (r *userRepoStub) CreateUser(_ context.Context, u *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *userRepoStub) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *userRepoStub) GetUser(_ context.Context, id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *userRepoStub) UpdateAccountState(_ context.Context, _ *model.User) error {
	return errors.New("not implemented")
}

func (r *userRepoStub) SetBanned(_ context.Context, id int, banned bool) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.IsBanned = banned
	return nil
}

func (r *userRepoStub) TopPlayers(_ context.Context, _ int) ([]model.TopPlayer, error) {
	return nil, errors.New("not implemented")
}

type modRepoStub struct {
	entries []*model.ModerationLogEntry
}

func (r *modRepoStub) CreateLogEntry(_ context.Context, entry *model.ModerationLogEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func TestBanUnban(t *testing.T) {
	users := &userRepoStub{users: map[int]*model.User{
		7: {ID: 7, Name: "bob"},
	}}
	logs := &modRepoStub{}
	s := NewModerationService(users, logs, txManagerStub{})

	if err := s.Ban(context.Background(), 1, 7, "fraud"); err != nil {
		t.Fatalf("Ban(): %v", err)
	}
	if !users.users[7].IsBanned {
		t.Error("IsBanned = false after Ban()")
	}

	if err := s.Unban(context.Background(), 1, 7, "appeal accepted"); err != nil {
		t.Fatalf("Unban(): %v", err)
	}
	if users.users[7].IsBanned {
		t.Error("IsBanned = true after Unban()")
	}

	if len(logs.entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(logs.entries))
	}
	if e := logs.entries[0]; e.Action != model.ModerationActionBan || e.ModeratorID != 1 || e.UserID != 7 || e.Reason != "fraud" {
		t.Errorf("ban entry = %+v", e)
	}
	if e := logs.entries[1]; e.Action != model.ModerationActionUnban {
		t.Errorf("unban entry action = %q, want unban", e.Action)
	}
	if logs.entries[0].ID == "" || logs.entries[0].ID == logs.entries[1].ID {
		t.Error("log entry IDs must be unique and non-empty")
	}
}

func TestBan_UnknownUser(t *testing.T) {
	users := &userRepoStub{users: map[int]*model.User{}}
	logs := &modRepoStub{}
	s := NewModerationService(users, logs, txManagerStub{})

	if err := s.Ban(context.Background(), 1, 99, "spam"); err == nil {
		t.Fatal("Ban() unknown user: err = nil")
	}
	if len(logs.entries) != 0 {
		t.Errorf("log entries = %d, want 0", len(logs.entries))
	}
}
