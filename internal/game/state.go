package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal state while the player is alive.
	StatePlaying State = iota
	// StateDead is terminal. The world can still be inspected but input is ignored.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
