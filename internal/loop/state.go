package loop

type State int

const (
	Running State = iota
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}

// Reason tells why a run ended.
type Reason int

const (
	ReasonQuit Reason = iota
	ReasonCollision
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Result is reported once the loop reaches Over.
type Result struct {
	Score  int
	Reason Reason
	Ticks  uint64
}
