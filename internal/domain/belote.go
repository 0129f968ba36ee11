package domain

// Announcement is the belote/rebelote call triggered by a play, if any.
type Announcement string

const (
	AnnouncementNone     Announcement = ""
	AnnouncementBelote   Announcement = "belote"
	AnnouncementRebelote Announcement = "rebelote"
)

// CheckBeloteAnnouncement returns the announcement triggered by playing card
// from the player's hand. It must be consulted before the card is removed:
// the hand has to hold both the king and queen of trump at the moment of the
// first qualifying play. The first qualifying play announces belote, the
// second by the same player rebelote; anything after that is silent.
func CheckBeloteAnnouncement(card Card, p *Player, trump Suit) Announcement {
	if !card.IsTrump(trump) || (card.Rank != King && card.Rank != Queen) {
		return AnnouncementNone
	}
	if !p.beloteAnnounced {
		if !p.Hand.HasBelote(trump) {
			return AnnouncementNone
		}
		return AnnouncementBelote
	}
	if !p.rebeloteAnnounced {
		return AnnouncementRebelote
	}
	return AnnouncementNone
}
