package phase

// Phase tracks how far a program tree has progressed through compilation
//
// Phase progression must be sequential and respect dependencies:
// - Built -> Lowered -> TypeChecked -> Printed
//
// Phase transitions are validated using Advance() which checks that the
// prerequisite is satisfied via the Prerequisites map.
type Phase int

const (
	PhaseBuilt       Phase = iota // Tree constructed by the frontend builder
	PhaseLowered                  // Frontend statements rewritten into SSA form
	PhaseTypeChecked              // Derivable result types annotated
	PhasePrinted                  // Listing captured
)

// Prerequisites maps each phase to its required predecessor phase
// This explicit mapping is safer than arithmetic and allows for non-linear phase progressions
var Prerequisites = map[Phase]Phase{
	PhaseLowered:     PhaseBuilt,
	PhaseTypeChecked: PhaseLowered,
	PhasePrinted:     PhaseTypeChecked,
}

// Order lists the runnable phases in execution order.
var Order = []Phase{PhaseLowered, PhaseTypeChecked, PhasePrinted}

// Advance reports whether a tree at current may move to next.
func Advance(current, next Phase) bool {
	req, ok := Prerequisites[next]
	return ok && current == req
}

func (p Phase) String() string {
	switch p {
	case PhaseBuilt:
		return "Built"
	case PhaseLowered:
		return "Lowered"
	case PhaseTypeChecked:
		return "TypeChecked"
	case PhasePrinted:
		return "Printed"
	default:
		return "Unknown"
	}
}
