package bot

import (
	"fmt"

	"belote/internal/domain"
)

// Agent binds one AI-controlled seat to its strategy.
type Agent struct {
	ID       string
	Name     string
	Position domain.Position
	Strategy Brain
}

// NewAgent creates an agent for the given seat and difficulty.
func NewAgent(p *domain.Player, strategy Brain) *Agent {
	return &Agent{
		ID:       p.ID,
		Name:     p.Name,
		Position: p.Position,
		Strategy: strategy,
	}
}

// Play picks the agent's card for the current trick of the game. The legal
// set is computed here so strategies can rely on it being exact.
func (a *Agent) Play(game *domain.Game) (domain.Card, error) {
	round := game.CurrentRound()
	if round == nil {
		return domain.Card{}, fmt.Errorf("agent %s: no round in progress", a.Name)
	}
	player := game.Player(a.Position)
	trick := round.CurrentTrick()
	legal := domain.LegalCards(player.Hand, trick, round.Trump)

	return a.Strategy.ChooseCard(Context{
		Trump:  round.Trump,
		Trick:  trick,
		Player: player,
		Legal:  legal,
	})
}

// OnGameEvent forwards a table event to the strategy.
func (a *Agent) OnGameEvent(event any) {
	a.Strategy.OnEvent(event)
}
