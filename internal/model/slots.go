package model

import "casino_bot_backend/internal/game/slots"

// SlotsSpinResult - итог спина слотов с косметическими кадрами анимации
type SlotsSpinResult struct {
	Symbols [3]slots.Symbol
	Frames  []string
	Payout  int
	Balance int
}
