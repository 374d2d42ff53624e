package model

// AuthData - результат регистрации или входа
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
