package env

import (
	"casino_bot_backend/internal/config"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	adminIDsEnvName = "ADMIN_IDS"
)

type adminConfig struct {
	ids map[int]bool
}

// NewAdminConfig - читает список ID администраторов из переменной
// окружения (через запятую). Пустой список допустим
func NewAdminConfig() (config.AdminConfig, error) {
	cfg := &adminConfig{ids: make(map[int]bool)}

	raw := os.Getenv(adminIDsEnvName)
	if len(raw) == 0 {
		return cfg, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		cfg.ids[id] = true
	}

	return cfg, nil
}

func (cfg *adminConfig) IsAdmin(userID int) bool {
	return cfg.ids[userID]
}
