package bot

import "belote/internal/domain"

// Tuning holds the per-level strategy knobs.
type Tuning struct {
	// MistakeRate is the chance a turn is played as a uniformly random legal
	// card instead of the strategy's pick.
	MistakeRate float64
	// TakeThreshold is the trick value, in card points, from which a winner
	// is worth spending when the bot is not the last to play.
	TakeThreshold int
}

// DefaultTuning balances the four difficulty levels. Champion never
// misplays and fights for every trick.
var DefaultTuning = map[domain.AILevel]Tuning{
	domain.LevelApprentice: {MistakeRate: 0.35, TakeThreshold: 14},
	domain.LevelSeasoned:   {MistakeRate: 0.15, TakeThreshold: 10},
	domain.LevelExpert:     {MistakeRate: 0.05, TakeThreshold: 6},
	domain.LevelChampion:   {MistakeRate: 0, TakeThreshold: 4},
}
