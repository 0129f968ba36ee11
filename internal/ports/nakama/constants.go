package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// table with an open seat.
	RpcQuickMatch = "quick_match"

	// MatchNameBelote is the authoritative match handler name registered
	// with Nakama.
	MatchNameBelote = "belote_match"

	// MatchLabelKey_OpenSeats is the match label key carrying the number of
	// open seats, used by the quick-match query.
	MatchLabelKey_OpenSeats = "open"
)
