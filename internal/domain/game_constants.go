package domain

// Client -> server opcodes.
const (
	OpCodeStartGame int64 = 1
	OpCodePlayCard  int64 = 2
	OpCodeNewGame   int64 = 3
)

// Server -> client opcodes.
const (
	OpCodeMatchState     int64 = 100
	OpCodeRoundStarted   int64 = 101
	OpCodeHandDealt      int64 = 102
	OpCodeCardPlayed     int64 = 103
	OpCodeBeloteCalled   int64 = 104
	OpCodeTrickCompleted int64 = 105
	OpCodeRoundCompleted int64 = 106
	OpCodeGameEnded      int64 = 107
	OpCodeGameError      int64 = 400
)
