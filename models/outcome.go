package models

// Outcome is the relation of a digest to a reference digest.
type Outcome int

const (
	// OutcomeEqual means both digests describe the same resources.
	OutcomeEqual Outcome = iota
	// OutcomeAhead means the first digest holds resources the second lacks.
	OutcomeAhead
	// OutcomeBehind means the second digest holds resources the first lacks.
	OutcomeBehind
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAhead:
		return "ahead"
	case OutcomeBehind:
		return "behind"
	default:
		return "equal"
	}
}
