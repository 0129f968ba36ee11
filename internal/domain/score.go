package domain

const (
	// LastTrickBonus is the fixed bonus for winning the eighth trick.
	LastTrickBonus = 10
	// BeloteBonus is the bonus for a completed belote/rebelote announcement.
	BeloteBonus = 20
	// RoundCardPoints is the total card points distributed every round.
	RoundCardPoints = 152
)

// RoundResult is the settled score of one team for one round.
type RoundResult struct {
	CardPoints     int
	BeloteBonus    int
	LastTrickBonus int
	Total          int
}

// TeamScore tracks one team's cumulative game score plus the accumulators of
// the round in progress. All fields are concrete and always present.
type TeamScore struct {
	Team      Team
	GameScore int

	RoundCardPoints     int
	RoundBeloteBonus    int
	RoundLastTrickBonus int
}

// NewTeamScore returns a zeroed score for the team.
func NewTeamScore(team Team) *TeamScore {
	return &TeamScore{Team: team}
}

// AddCardPoints credits trick card points to the current round.
func (s *TeamScore) AddCardPoints(points int) {
	s.RoundCardPoints += points
}

// AddBeloteBonus credits the belote bonus to the current round.
func (s *TeamScore) AddBeloteBonus() {
	s.RoundBeloteBonus += BeloteBonus
}

// AddLastTrickBonus credits the last-trick bonus to the current round.
func (s *TeamScore) AddLastTrickBonus() {
	s.RoundLastTrickBonus += LastTrickBonus
}

// RoundTotal returns the running total of the round in progress.
func (s *TeamScore) RoundTotal() int {
	return s.RoundCardPoints + s.RoundBeloteBonus + s.RoundLastTrickBonus
}

// FinalizeRound rolls the round total into the cumulative game score, resets
// the round accumulators, and returns the settled round result. GameScore
// never decreases.
func (s *TeamScore) FinalizeRound() RoundResult {
	result := RoundResult{
		CardPoints:     s.RoundCardPoints,
		BeloteBonus:    s.RoundBeloteBonus,
		LastTrickBonus: s.RoundLastTrickBonus,
		Total:          s.RoundTotal(),
	}
	s.GameScore += result.Total
	s.ResetRound()
	return result
}

// ResetRound clears the round accumulators.
func (s *TeamScore) ResetRound() {
	s.RoundCardPoints = 0
	s.RoundBeloteBonus = 0
	s.RoundLastTrickBonus = 0
}

// ResetGame clears everything for a fresh game.
func (s *TeamScore) ResetGame() {
	s.GameScore = 0
	s.ResetRound()
}

// HasWon reports whether the cumulative score reached the target.
func (s *TeamScore) HasWon(target int) bool {
	return s.GameScore >= target
}
