package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User - аккаунт игрока. Создается один раз при регистрации
// (balance и rating из конфигурации экономики), никогда не удаляется,
// только мягко отключается через IsBanned
type User struct {
	ID       int
	Name     string
	Login    string
	Password string

	Balance     int
	GamesPlayed int
	Wins        int
	Rating      int

	// Дневная квота: счетчик игр за день и граница его сброса
	GamesToday     int
	LastDailyReset time.Time

	LastGame         time.Time
	IsBanned         bool
	RegistrationDate time.Time
}

// TopPlayer - строка таблицы лидеров
type TopPlayer struct {
	Name        string
	Rating      int
	Wins        int
	GamesPlayed int
}

type UserClaims struct {
	jwt.RegisteredClaims
}
