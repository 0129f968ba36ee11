package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"belote/internal/domain"
)

// Service contains the table use-cases operating on domain state. It is the
// only layer that advances a Game; transports translate its events.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. Injecting a seeded rng makes deals reproducible.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrGameEnded       = errors.New("game already ended")
	ErrRoundInProgress = errors.New("round already in progress")
	ErrNotPlaying      = errors.New("no round in progress")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalPlay     = errors.New("illegal play")
)

// StartRound deals the next round of the game: hands go out privately, the
// first trick is opened by the seat left of the dealer.
func (s *Service) StartRound(game *domain.Game) ([]Event, error) {
	if game.IsCompleted() {
		return nil, ErrGameEnded
	}
	if game.Phase() == domain.PhasePlaying {
		return nil, ErrRoundInProgress
	}

	round := game.StartRound()
	if err := round.DealCards(s.rng.Float64); err != nil {
		return nil, fmt.Errorf("start round %d: %w", round.Number, err)
	}

	leader := round.FirstLeader()
	round.StartTrick(leader)
	game.SetCurrentPlayer(leader)

	events := []Event{{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Round:       round.Number,
			Trump:       round.Trump,
			Dealer:      round.Dealer,
			FirstLeader: leader,
			Scores:      scoresOf(game),
		},
	}}

	for _, pos := range domain.Positions() {
		p := game.Player(pos)
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID:   p.ID,
				Position: pos,
				Hand:     p.Hand.Cards(),
			},
			Recipients: []string{p.ID},
		})
	}
	return events, nil
}

// PlayCard processes one play by the identified player and emits the
// resulting events. Completing the eighth trick settles the round and, when a
// team reaches the target, the game.
func (s *Service) PlayCard(game *domain.Game, userID string, card domain.Card) ([]Event, error) {
	if game.Phase() != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	player, ok := playerByID(game, userID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentPlayer() != player.Position {
		return nil, ErrNotYourTurn
	}

	round := game.CurrentRound()
	trick := round.CurrentTrick()
	result := domain.PlayCard(card, player, trick, round.Trump)
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrIllegalPlay, result.Error)
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			UserID:       userID,
			Position:     player.Position,
			Card:         card,
			Announcement: result.Announcement,
			NextPlayer:   result.NextPlayer,
		},
	}}
	if result.Announcement != domain.AnnouncementNone {
		events = append(events, Event{
			Kind: EventBeloteAnnounced,
			Payload: BeloteAnnouncedPayload{
				UserID:       userID,
				Position:     player.Position,
				Announcement: result.Announcement,
			},
		})
	}

	if !result.TrickCompleted {
		game.SetCurrentPlayer(result.NextPlayer)
		return events, nil
	}

	trickPayload := TrickCompletedPayload{
		Trick:  trick.Number,
		Winner: result.TrickWinner,
		Points: trick.TotalPoints(),
	}

	if !round.IsCompleted() {
		trickPayload.NextLeader = result.TrickWinner
		events = append(events, Event{Kind: EventTrickCompleted, Payload: trickPayload})
		round.StartTrick(result.TrickWinner)
		game.SetCurrentPlayer(result.TrickWinner)
		return events, nil
	}

	events = append(events, Event{Kind: EventTrickCompleted, Payload: trickPayload})
	events = append(events, s.settleRound(game, round)...)
	return events, nil
}

// settleRound finalizes a played-out round and emits the round summary plus,
// when the target is reached, the game result.
func (s *Service) settleRound(game *domain.Game, round *domain.Round) []Event {
	results := game.FinishRound()

	payload := RoundCompletedPayload{
		Round:   round.Number,
		Results: make(map[domain.Team]TeamRoundResult, len(results)),
		Scores:  scoresOf(game),
	}
	for team, r := range results {
		payload.Results[team] = TeamRoundResult{
			CardPoints:     r.CardPoints,
			BeloteBonus:    r.BeloteBonus,
			LastTrickBonus: r.LastTrickBonus,
			Total:          r.Total,
		}
	}
	events := []Event{{Kind: EventRoundCompleted, Payload: payload}}

	if winner, ok := game.Winner(); ok {
		events = append(events, Event{
			Kind: EventGameEnded,
			Payload: GameEndedPayload{
				Winner: winner,
				Scores: scoresOf(game),
			},
		})
	}
	return events
}

// LegalCards exposes the legal set for the identified player's current turn,
// so transports can hint clients and bots without reimplementing the rules.
func (s *Service) LegalCards(game *domain.Game, userID string) ([]domain.Card, error) {
	if game.Phase() != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	player, ok := playerByID(game, userID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentPlayer() != player.Position {
		return nil, ErrNotYourTurn
	}
	round := game.CurrentRound()
	return domain.LegalCards(player.Hand, round.CurrentTrick(), round.Trump), nil
}

func playerByID(game *domain.Game, userID string) (*domain.Player, bool) {
	for _, pos := range domain.Positions() {
		if p := game.Player(pos); p != nil && p.ID == userID {
			return p, true
		}
	}
	return nil, false
}

func scoresOf(game *domain.Game) TeamScores {
	return TeamScores{
		NS: game.TeamScore(domain.TeamNS).GameScore,
		EW: game.TeamScore(domain.TeamEW).GameScore,
	}
}
