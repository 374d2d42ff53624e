package game

import "errors"

// Ошибки игрового ядра. Все локальные и восстановимые:
// обработчик возвращает их клиенту, процесс не завершается.
var (
	// ErrInsufficientStake - ставка меньше либо равна нулю или превышает баланс
	ErrInsufficientStake = errors.New("insufficient stake")

	// ErrNoActiveSession - действие по игре, у которой нет живой сессии пользователя
	ErrNoActiveSession = errors.New("no active session")

	// ErrNoPendingBets - спин рулетки с пустым списком ставок
	ErrNoPendingBets = errors.New("no pending bets")

	// ErrEmptyDeck - колода исчерпана. При корректном жизненном цикле сессии
	// недостижима, сигнализирует о логической ошибке
	ErrEmptyDeck = errors.New("empty deck")

	// ErrDailyLimitExceeded - исчерпан дневной лимит игр
	ErrDailyLimitExceeded = errors.New("daily limit exceeded")

	// ErrSessionInProgress - у пользователя уже есть живая сессия этого типа игры
	ErrSessionInProgress = errors.New("game session already in progress")
)
