package bot

import (
	"fmt"
	"math/rand"
	"time"

	"belote/internal/bot/brain"
	"belote/internal/domain"
)

// NewBrain creates an AI brain for the given difficulty level, drawing its
// randomness from rng or a time-seeded default.
func NewBrain(level domain.AILevel, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tuning := DefaultTuning[level]
	switch level {
	case domain.LevelApprentice:
		return &ApprenticeBot{rng: rng}, nil
	case domain.LevelSeasoned:
		return &SeasonedBot{rng: rng, tuning: tuning}, nil
	case domain.LevelExpert:
		return &ExpertBot{rng: rng, tuning: tuning}, nil
	case domain.LevelChampion:
		return &ChampionBot{rng: rng, tuning: tuning, memory: brain.NewMemory()}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
