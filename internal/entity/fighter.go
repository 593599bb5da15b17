package entity

// Kind tags a fighter for death handling.
type Kind int

const (
	KindPlayer Kind = iota
	KindOrc
	KindTroll
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindOrc:
		return "orc"
	case KindTroll:
		return "troll"
	default:
		return "unknown"
	}
}

// ParseKind maps a creature id to its kind.
func ParseKind(id string) (Kind, bool) {
	switch id {
	case "player":
		return KindPlayer, true
	case "orc":
		return KindOrc, true
	case "troll":
		return KindTroll, true
	}
	return 0, false
}

// Fighter is the combat capability of an object.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	Kind    Kind
}

// Behavior selects what an AI does on its turn.
type Behavior int

const (
	// BehaviorBasic approaches the player when seen and attacks when adjacent.
	BehaviorBasic Behavior = iota
)

// AI is the scheduled-action capability of an object.
type AI struct {
	Speed    int // acts on ticks divisible by Speed
	Behavior Behavior
}
