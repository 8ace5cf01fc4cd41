package channelmgr

// State is the Manager's migration state (spec.md §3, §4.3).
type State int

// State values.
const (
	Idle State = iota
	ChangeRequested
	ChangeInProgress
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ChangeRequested:
		return "change-requested"
	case ChangeInProgress:
		return "change-in-progress"
	default:
		return "unknown"
	}
}
