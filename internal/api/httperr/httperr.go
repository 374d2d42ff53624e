package httperr

import (
	"errors"
	"net/http"

	"casino_bot_backend/internal/game"
	"casino_bot_backend/internal/service"
)

// Write - переводит типизированные ошибки ядра в HTTP статусы.
// Все игровые ошибки локальные и восстановимые
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientStake),
		errors.Is(err, game.ErrNoPendingBets),
		errors.Is(err, game.ErrSessionInProgress):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, game.ErrNoActiveSession):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrDailyLimitExceeded):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.Is(err, service.ErrAccountBanned):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
