package entities

// GhostMode is the behavioural state of a ghost.
type GhostMode int

const (
	ModeRegular GhostMode = iota
	ModeFrighten
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeFrighten:
		return "frighten"
	case ModeEaten:
		return "eaten"
	default:
		return "regular"
	}
}

// ModeEvent drives ghost mode transitions.
type ModeEvent int

const (
	// EventPowerPellet fires when the player eats a big pellet.
	EventPowerPellet ModeEvent = iota
	// EventFrightenExpired fires when the frighten timer runs out.
	EventFrightenExpired
	// EventEatenByPlayer fires when the player touches the ghost.
	EventEatenByPlayer
	// EventReachedHome fires when the ghost arrives at its home node.
	EventReachedHome
)

func (e ModeEvent) String() string {
	switch e {
	case EventPowerPellet:
		return "power-pellet"
	case EventFrightenExpired:
		return "frighten-expired"
	case EventEatenByPlayer:
		return "eaten-by-player"
	case EventReachedHome:
		return "reached-home"
	default:
		return "unknown"
	}
}

// NextMode is the ghost state machine. Pairs without a transition keep the current mode.
func NextMode(m GhostMode, e ModeEvent) GhostMode {
	switch m {
	case ModeRegular:
		if e == EventPowerPellet {
			return ModeFrighten
		}
		return ModeRegular
	case ModeFrighten:
		switch e {
		case EventFrightenExpired:
			return ModeRegular
		case EventEatenByPlayer:
			return ModeEaten
		default:
			return ModeFrighten
		}
	case ModeEaten:
		if e == EventReachedHome {
			return ModeRegular
		}
		return ModeEaten
	default:
		return m
	}
}
