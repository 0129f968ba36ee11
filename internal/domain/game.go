package domain

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseDealing indicates the next round is ready to be dealt.
	PhaseDealing Phase = "dealing"
	// PhasePlaying indicates a round is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates a team has reached the target score.
	PhaseEnded Phase = "ended"
)

// DefaultTargetScore is the conventional game target.
const DefaultTargetScore = 1000

// Settings configures a game. Zero values fall back to the defaults.
type Settings struct {
	TargetScore int
	TrumpSuit   Suit
	AILevel     AILevel
}

func (s Settings) withDefaults() Settings {
	if s.TargetScore == 0 {
		s.TargetScore = DefaultTargetScore
	}
	if s.TrumpSuit == "" {
		s.TrumpSuit = Spades
	}
	if s.AILevel == "" {
		s.AILevel = LevelSeasoned
	}
	return s
}

// Game orchestrates the player roster, dealer rotation, round sequencing and
// cumulative scoring for one table.
type Game struct {
	ID       string
	Settings Settings

	players map[Position]*Player
	scores  map[Team]*TeamScore
	rounds  []*Round

	dealer        Position
	currentPlayer Position
	phase         Phase
	winner        Team
	completed     bool
}

// NewGame creates a table with the given roster. Players must cover all four
// seats; NewSoloGame builds the conventional single-human roster.
func NewGame(id string, settings Settings, players map[Position]*Player) *Game {
	return &Game{
		ID:       id,
		Settings: settings.withDefaults(),
		players:  players,
		scores: map[Team]*TeamScore{
			TeamNS: NewTeamScore(TeamNS),
			TeamEW: NewTeamScore(TeamEW),
		},
		dealer: South,
		phase:  PhaseDealing,
	}
}

// NewSoloGame creates the conventional table: a human at South and three AI
// opponents at the remaining seats.
func NewSoloGame(id, humanID, humanName string, settings Settings) *Game {
	settings = settings.withDefaults()
	players := map[Position]*Player{
		South: NewHumanPlayer(humanID, humanName, South),
	}
	aiNames := map[Position]string{West: "ai_1", North: "ai_2", East: "ai_3"}
	for _, pos := range []Position{West, North, East} {
		players[pos] = NewAIPlayer(aiNames[pos], aiNames[pos], pos, settings.AILevel)
	}
	return NewGame(id, settings, players)
}

// Player returns the player seated at pos.
func (g *Game) Player(pos Position) *Player {
	return g.players[pos]
}

// Players returns the seat-to-player roster.
func (g *Game) Players() map[Position]*Player {
	return g.players
}

// Dealer returns the current dealer seat.
func (g *Game) Dealer() Position {
	return g.dealer
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayer returns the seat expected to act next during play.
func (g *Game) CurrentPlayer() Position {
	return g.currentPlayer
}

// SetCurrentPlayer records the seat expected to act next.
func (g *Game) SetCurrentPlayer(pos Position) {
	g.currentPlayer = pos
}

// StartRound begins a new deal: player round state is reset and a fresh
// Round is created against the cumulative team scores. Returns nil once the
// game has ended.
func (g *Game) StartRound() *Round {
	if g.completed {
		return nil
	}
	for _, p := range g.players {
		p.ResetForRound()
	}
	round := NewRound(len(g.rounds)+1, g.Settings.TrumpSuit, g.dealer, g.players, g.scores)
	g.rounds = append(g.rounds, round)
	g.phase = PhasePlaying
	return round
}

// CurrentRound returns the round in progress, or nil before the first deal.
func (g *Game) CurrentRound() *Round {
	if len(g.rounds) == 0 {
		return nil
	}
	return g.rounds[len(g.rounds)-1]
}

// Rounds returns the number of rounds started.
func (g *Game) Rounds() int {
	return len(g.rounds)
}

// FinishRound settles the current round into the cumulative scores, rotates
// the dealer, and checks the win condition. It returns the per-team round
// results. Calling it again for the same round is a no-op.
func (g *Game) FinishRound() map[Team]RoundResult {
	round := g.CurrentRound()
	if round == nil || round.IsFinalized() {
		return nil
	}
	round.FinalizeRound()

	results := map[Team]RoundResult{
		TeamNS: g.scores[TeamNS].FinalizeRound(),
		TeamEW: g.scores[TeamEW].FinalizeRound(),
	}

	g.dealer = g.dealer.Next()
	g.checkGameEnd()
	if !g.completed {
		g.phase = PhaseDealing
	}
	return results
}

// checkGameEnd resolves the win condition. When both teams are at or above
// the target, the higher score wins; on an exact tie no winner is declared
// and play continues with another round.
func (g *Game) checkGameEnd() {
	ns := g.scores[TeamNS]
	ew := g.scores[TeamEW]
	target := g.Settings.TargetScore

	switch {
	case ns.HasWon(target) && ew.HasWon(target):
		if ns.GameScore == ew.GameScore {
			return
		}
		if ns.GameScore > ew.GameScore {
			g.declareWinner(TeamNS)
		} else {
			g.declareWinner(TeamEW)
		}
	case ns.HasWon(target):
		g.declareWinner(TeamNS)
	case ew.HasWon(target):
		g.declareWinner(TeamEW)
	}
}

func (g *Game) declareWinner(team Team) {
	g.completed = true
	g.winner = team
	g.phase = PhaseEnded
}

// TeamScore returns the cumulative score for the team.
func (g *Game) TeamScore(team Team) *TeamScore {
	return g.scores[team]
}

// Winner returns the winning team once the game has ended.
func (g *Game) Winner() (Team, bool) {
	if !g.completed {
		return "", false
	}
	return g.winner, true
}

// IsCompleted reports whether a team has won.
func (g *Game) IsCompleted() bool {
	return g.completed
}

// Reset clears all cumulative and round-local state for a fresh game with
// the same roster and settings.
func (g *Game) Reset() {
	for _, s := range g.scores {
		s.ResetGame()
	}
	for _, p := range g.players {
		p.ResetForRound()
	}
	g.rounds = nil
	g.dealer = South
	g.currentPlayer = ""
	g.phase = PhaseDealing
	g.winner = ""
	g.completed = false
}
