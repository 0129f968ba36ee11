package app

// SeatsPerTable is the fixed table size. Every seat must be occupied before a
// round can be dealt; the transport fills empty seats with bots.
const SeatsPerTable = 4
