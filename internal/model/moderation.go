package model

import "time"

// Действия модерации
const (
	ModerationActionBan   = "ban"
	ModerationActionUnban = "unban"
)

// ModerationLogEntry - append-only запись журнала модерации.
// После создания не изменяется
type ModerationLogEntry struct {
	ID          string
	ModeratorID int
	UserID      int
	Action      string
	Reason      string
	CreatedAt   time.Time
}
