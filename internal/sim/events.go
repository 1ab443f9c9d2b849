package sim

// EventKind identifies a discrete simulation event emitted by Step.
type EventKind int

const (
	// EventCoinCollected is emitted once per coin picked up this tick.
	// Value carries the coin's worth.
	EventCoinCollected EventKind = iota
	// EventCollision is emitted when the ball hits an obstacle.
	// At most one per tick; ends the run.
	EventCollision
	// EventGroundHit is emitted when the ball touches the ground.
	// Ends the run.
	EventGroundHit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin_collected"
	case EventCollision:
		return "collision"
	case EventGroundHit:
		return "ground_hit"
	default:
		return "unknown"
	}
}

// Event is one discrete occurrence during a simulation tick. Steps
// return events in the order they happened; the driver forwards them to
// the progression ledger after the tick completes. The simulation never
// touches persistent state itself.
type Event struct {
	Kind  EventKind
	Value int // Coin value for EventCoinCollected, zero otherwise
}
