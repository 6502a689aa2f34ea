// Package netl models the facility-specific hardware of the NETL TRIGA
// Mark II reactor at the University of Texas at Austin: the control rods,
// grid plates, core shroud, graphite reflector with its rotary specimen
// rack, beam ports, and the core loading map that ties the elements of
// package triga into a complete reactor description.
package netl

// RodState is the two-state position model for a control rod. A rod is
// inserted only when fully seated; any nonzero withdrawal counts as
// withdrawn.
type RodState string

const (
	RodInserted  RodState = "inserted"
	RodWithdrawn RodState = "withdrawn"
)

// RodSection names the axial section of a control rod that sits at the
// core midplane for a given state.
type RodSection string

const (
	SectionAbsorber     RodSection = "absorber"
	SectionAirFollower  RodSection = "air_follower"
	SectionFuelFollower RodSection = "fuel_follower"
)

func rodState(fractionWithdrawn float64) RodState {
	if fractionWithdrawn == 0 {
		return RodInserted
	}
	return RodWithdrawn
}
