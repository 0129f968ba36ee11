package domain

// Position is a seat at the table.
type Position string

const (
	North Position = "N"
	East  Position = "E"
	South Position = "S"
	West  Position = "W"
)

// Team is a fixed partnership of two facing seats.
type Team string

const (
	TeamNS Team = "NS"
	TeamEW Team = "EW"
)

// Teams returns both teams.
func Teams() [2]Team {
	return [2]Team{TeamNS, TeamEW}
}

// playOrder is the fixed rotation of seats. South leads the cycle by
// convention; the cycle itself is the same as N, E, S, W.
var playOrder = [4]Position{South, West, North, East}

// Positions returns the four seats in rotation order.
func Positions() [4]Position {
	return playOrder
}

func positionIndex(p Position) int {
	for i, pos := range playOrder {
		if pos == p {
			return i
		}
	}
	return 0
}

// Next returns the seat that plays after p.
func (p Position) Next() Position {
	return playOrder[(positionIndex(p)+1)%4]
}

// Partner returns the seat facing p.
func (p Position) Partner() Position {
	return playOrder[(positionIndex(p)+2)%4]
}

// Team returns the partnership p belongs to.
func (p Position) Team() Team {
	if p == North || p == South {
		return TeamNS
	}
	return TeamEW
}

// ArePartners reports whether the two seats form a partnership.
func ArePartners(a, b Position) bool {
	return a.Partner() == b
}

// PlayOrderFrom returns all four seats in rotation order starting at from.
func PlayOrderFrom(from Position) [4]Position {
	var order [4]Position
	start := positionIndex(from)
	for i := 0; i < 4; i++ {
		order[i] = playOrder[(start+i)%4]
	}
	return order
}
