// Package triga models the in-core elements of a TRIGA Mark II research
// reactor: the standard fuel element, the graphite dummy element, and the
// part records they are assembled from. Facility-specific hardware (control
// rods, grid plates, the core loading map) builds on this package.
package triga

// ElementKind discriminates the element types that can occupy a core
// lattice position.
type ElementKind string

const (
	KindFuelElement            ElementKind = "fuel_element"
	KindGraphiteElement        ElementKind = "graphite_element"
	KindCentralThimble         ElementKind = "central_thimble"
	KindSourceHolder           ElementKind = "source_holder"
	KindTransientRod           ElementKind = "transient_rod"
	KindFuelFollowerControlRod ElementKind = "fuel_follower_control_rod"
)

// Element is anything that can sit in a core lattice position. A nil
// Element marks a water-filled (empty) position.
type Element interface {
	Kind() ElementKind
}
