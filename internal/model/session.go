package model

import "time"

// Session - серверная сессия авторизации с хэшем refresh токена
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
