package rules

// Action is the pending transition recorded for a cell during planning.
type Action uint8

const (
	None Action = iota
	Spawn
	Kill
)

func (a Action) String() string {
	switch a {
	case Spawn:
		return "spawn"
	case Kill:
		return "kill"
	default:
		return "none"
	}
}

/*
Decide applies Conway's Game of Life rules to a cell and returns the action it needs.

Live cells with fewer than 2 or more than 3 neighbors are killed, dead cells with
exactly 3 neighbors spawn. Every other cell keeps its state and gets None.
*/
func Decide(neighbors int, alive bool) Action {
	switch {
	case alive && (neighbors < 2 || neighbors > 3):
		return Kill
	case !alive && neighbors == 3:
		return Spawn
	default:
		return None
	}
}

// Apply returns the state a cell holds after the action is committed
func (a Action) Apply(alive bool) bool {
	switch a {
	case Spawn:
		return true
	case Kill:
		return false
	default:
		return alive
	}
}
