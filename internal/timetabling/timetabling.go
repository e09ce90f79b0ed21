// Package timetabling orchestrates one end-to-end search: building the
// CP-SAT model from an entity catalog, running it through the solver, and
// turning the outcome into a Solution plus a console/JSON report.
package timetabling

// Phase names the search's stages. The terminal stage maps to a
// solverapi.Status; Built and Solving exist only to describe what Run is
// doing before a Status is available.
type Phase int

const (
	PhaseBuilt Phase = iota
	PhaseSolving
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseBuilt:
		return "BUILT"
	case PhaseSolving:
		return "SOLVING"
	case PhaseDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}
