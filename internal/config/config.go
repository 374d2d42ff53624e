package config

import (
	"time"

	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/slots"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type AdminConfig interface {
	IsAdmin(userID int) bool
}

type GameConfig interface {
	Economy() economy.Config
	SlotSymbols() []slots.Symbol
	SlotAnimationFrames() int
}
