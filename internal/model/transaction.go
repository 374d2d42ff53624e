package model

import "time"

// Transaction - запись журнала транзакций: одна строка
// на каждый разрешенный игровой раунд
type Transaction struct {
	ID        string
	UserID    int
	GameType  string
	BetAmount int
	WinAmount int
	CreatedAt time.Time
}
