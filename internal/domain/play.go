package domain

import "fmt"

// PlayResult is the structured outcome of a play submission. Invalid input
// (card not held, wrong turn, illegal card) comes back as Success=false with
// a reason; it is never a panic, so callers can re-prompt.
type PlayResult struct {
	Success      bool
	Error        string
	Announcement Announcement

	TrickCompleted bool
	TrickWinner    Position // set when TrickCompleted
	NextPlayer     Position // set when the trick is still open
}

// PlayCard is the single state-changing entry point for one turn: it
// validates the play, records any belote announcement, removes the card from
// the hand and adds it to the trick.
func PlayCard(card Card, p *Player, trick *Trick, trump Suit) PlayResult {
	if !p.Hand.HasCard(card) {
		return PlayResult{Error: fmt.Sprintf("%s does not hold %s", p.Name, card)}
	}

	expected, ok := trick.NextPlayer()
	if !ok || expected != p.Position {
		return PlayResult{Error: fmt.Sprintf("not %s's turn to play", p.Name)}
	}

	if !IsValidPlay(card, p.Hand, trick, trump) {
		return PlayResult{Error: fmt.Sprintf("%s may not be played now", card)}
	}

	// The announcement check must see the hand before the card leaves it.
	announcement := CheckBeloteAnnouncement(card, p, trump)
	switch announcement {
	case AnnouncementBelote:
		p.AnnounceBelote()
	case AnnouncementRebelote:
		p.AnnounceRebelote()
	}

	p.Hand.RemoveCard(card)
	trick.AddPlay(p.Position, card)

	result := PlayResult{
		Success:      true,
		Announcement: announcement,
	}
	if trick.IsCompleted() {
		result.TrickCompleted = true
		result.TrickWinner, _ = trick.Winner()
	} else {
		result.NextPlayer, _ = trick.NextPlayer()
	}
	return result
}
