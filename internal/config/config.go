package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig is the table-wide configuration loaded at module startup.
// Zeroed fields fall back to the defaults below.
type GameConfig struct {
	TargetScore int    `json:"target_score"`
	TrumpSuit   string `json:"trump_suit"` // C, D, H or S
	BotLevel    string `json:"bot_level"`  // apprentice, seasoned, expert, champion
	// TurnDurationSeconds bounds how long a human may think before the seat
	// is considered stalled.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// filling the empty seats of a solo human lobby with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotPlayDelayTicks spaces out bot plays so turns stay readable.
	BotPlayDelayTicks int `json:"bot_play_delay_ticks"`
}

const (
	defaultTargetScore         = 1000
	defaultTrumpSuit           = "S"
	defaultBotLevel            = "seasoned"
	defaultTurnDuration        = 30
	defaultBotAutoFillDelaySec = 3
	defaultBotPlayDelayTicks   = 2
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. The first
// call wins; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration with defaults applied.
// It never returns nil, so callers can read it before any load.
func GetGameConfig() GameConfig {
	var c GameConfig
	if cfg != nil {
		c = *cfg
	}
	if c.TargetScore <= 0 {
		c.TargetScore = defaultTargetScore
	}
	if c.TrumpSuit == "" {
		c.TrumpSuit = defaultTrumpSuit
	}
	if c.BotLevel == "" {
		c.BotLevel = defaultBotLevel
	}
	if c.TurnDurationSeconds <= 0 {
		c.TurnDurationSeconds = defaultTurnDuration
	}
	if c.BotAutoFillDelaySeconds <= 0 {
		c.BotAutoFillDelaySeconds = defaultBotAutoFillDelaySec
	}
	if c.BotPlayDelayTicks <= 0 {
		c.BotPlayDelayTicks = defaultBotPlayDelayTicks
	}
	return c
}
