package env

import (
	"fmt"
	"os"

	"casino_bot_backend/internal/config"
	"casino_bot_backend/internal/game/economy"
	"casino_bot_backend/internal/game/slots"

	"gopkg.in/yaml.v3"
)

// Структуры для разбора config.yaml
type gameYAML struct {
	Economy economy.Config `yaml:"economy"`
	Slots   slotsYAML      `yaml:"slots"`
}

type slotsYAML struct {
	AnimationFrames int          `yaml:"animation_frames"`
	Symbols         []symbolYAML `yaml:"symbols"`
}

type symbolYAML struct {
	Emoji      string `yaml:"emoji"`
	Name       string `yaml:"name"`
	Multiplier int    `yaml:"multiplier"`
}

type gameConfig struct {
	economy         economy.Config
	symbols         []slots.Symbol
	animationFrames int
}

// NewGameConfigFromYAML - загружает числа экономики и таблицу символов
// слотов из yaml файла. Отсутствующие секции заполняются значениями
// по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	parsed := gameYAML{
		Economy: economy.DefaultConfig(),
		Slots:   slotsYAML{AnimationFrames: 3},
	}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	cfg := &gameConfig{
		economy:         parsed.Economy,
		animationFrames: parsed.Slots.AnimationFrames,
	}
	for _, s := range parsed.Slots.Symbols {
		cfg.symbols = append(cfg.symbols, slots.Symbol{
			Emoji:      s.Emoji,
			Name:       s.Name,
			Multiplier: s.Multiplier,
		})
	}
	if len(cfg.symbols) == 0 {
		cfg.symbols = slots.DefaultSymbols()
	}

	return cfg, nil
}

func (cfg *gameConfig) Economy() economy.Config {
	return cfg.economy
}

func (cfg *gameConfig) SlotSymbols() []slots.Symbol {
	return cfg.symbols
}

func (cfg *gameConfig) SlotAnimationFrames() int {
	return cfg.animationFrames
}
