package admin

type ModerationRequest struct {
	UserID int    `json:"user_id"` // ID целевого пользователя
	Reason string `json:"reason"`  // Причина действия
}
