package whilst

type State int

const (
	StateInvoking State = iota
	StateChecking
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInvoking:
		return "invoking"
	case StateChecking:
		return "checking"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
