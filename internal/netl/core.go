package netl

import (
	"fmt"
	"math"
	"sort"

	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// The core lattice is seven concentric hexagonal rings labeled A (the
// single center position) through G. Positions are labeled "X-NN" with NN
// counting clockwise from north, e.g. "B-01" or "G-14".
type ringSpec struct {
	letter byte
	count  int
}

// rings runs outer ring first; iteration order everywhere follows it.
var rings = []ringSpec{
	{'G', 36},
	{'F', 30},
	{'E', 24},
	{'D', 18},
	{'C', 12},
	{'B', 6},
	{'A', 1},
}

// Reserved positions hold the central thimble and the four control rods;
// the loading map may not touch them.
const (
	PositionCentralThimble = "A-01"
	PositionTransientRod   = "C-01"
	PositionRegulatingRod  = "C-07"
	PositionShim1          = "D-06"
	PositionShim2          = "D-14"
)

var reserved = map[string]struct{}{
	PositionCentralThimble: {},
	PositionTransientRod:   {},
	PositionRegulatingRod:  {},
	PositionShim1:          {},
	PositionShim2:          {},
}

func parseLabel(label string) (byte, int, error) {
	if len(label) != 4 || label[1] != '-' {
		return 0, 0, fmt.Errorf("malformed position %q: %w", label, validate.ErrInvalidLocation)
	}
	ring := label[0]
	d1, d2 := label[2], label[3]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, 0, fmt.Errorf("malformed position %q: %w", label, validate.ErrInvalidLocation)
	}
	index := int(d1-'0')*10 + int(d2-'0')
	for _, r := range rings {
		if r.letter != ring {
			continue
		}
		if index < 1 || index > r.count {
			return 0, 0, fmt.Errorf("position %q: ring %c has %d positions: %w",
				label, ring, r.count, validate.ErrInvalidLocation)
		}
		return ring, index, nil
	}
	return 0, 0, fmt.Errorf("position %q: no ring %c: %w", label, ring, validate.ErrInvalidLocation)
}

// Positions lists every lattice position, outer ring first and clockwise
// within each ring. The order is deterministic.
func Positions() []string {
	out := make([]string, 0, 127)
	for _, r := range rings {
		for i := 1; i <= r.count; i++ {
			out = append(out, fmt.Sprintf("%c-%02d", r.letter, i))
		}
	}
	return out
}

// IsReserved reports whether the position belongs to the central thimble
// or a control rod.
func IsReserved(label string) bool {
	_, ok := reserved[label]
	return ok
}

// ReservedPositions lists the reserved positions in lexical order.
func ReservedPositions() []string {
	out := make([]string, 0, len(reserved))
	for label := range reserved {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Core is the loading map: which element occupies each lattice position.
// A nil element (or an absent key) is a water-filled position.
type Core struct {
	pitch   float64
	loading map[string]triga.Element
}

// NewCore validates the loading map against the lattice. Only fuel
// elements, graphite elements, and source holders are loadable; rods and
// the central thimble live in their reserved positions on the Reactor.
// Positions absent from the map take their value from the documented
// default loading; a present key always wins, so an explicit nil leaves a
// position water-filled.
func NewCore(pitch float64, loading map[string]triga.Element) (Core, error) {
	if err := validate.Positive("core", "lattice pitch", pitch); err != nil {
		return Core{}, err
	}
	copied := make(map[string]triga.Element, len(loading))
	for label, elem := range loading {
		if _, _, err := parseLabel(label); err != nil {
			return Core{}, err
		}
		if IsReserved(label) {
			return Core{}, fmt.Errorf("position %q: %w", label, validate.ErrReservedLocation)
		}
		if elem != nil {
			switch elem.Kind() {
			case triga.KindFuelElement, triga.KindGraphiteElement, triga.KindSourceHolder:
			default:
				return Core{}, fmt.Errorf("position %q: element kind %q is not loadable: %w",
					label, elem.Kind(), validate.ErrInvalidInput)
			}
		}
		copied[label] = elem
	}
	for label, elem := range DefaultLoading() {
		if _, ok := copied[label]; !ok {
			copied[label] = elem
		}
	}
	return Core{pitch: pitch, loading: copied}, nil
}

// Pitch is the lattice pitch in centimeters.
func (c Core) Pitch() float64 { return c.pitch }

// At returns the element at a position, nil for a water-filled position.
// Reserved positions are an error; ask the Reactor for those.
func (c Core) At(label string) (triga.Element, error) {
	if _, _, err := parseLabel(label); err != nil {
		return nil, err
	}
	if IsReserved(label) {
		return nil, fmt.Errorf("position %q: %w", label, validate.ErrReservedLocation)
	}
	return c.loading[label], nil
}

// Loading returns a copy of the loading map.
func (c Core) Loading() map[string]triga.Element {
	out := make(map[string]triga.Element, len(c.loading))
	for label, elem := range c.loading {
		out[label] = elem
	}
	return out
}

// Counts tallies the loaded elements by kind.
func (c Core) Counts() map[triga.ElementKind]int {
	out := make(map[triga.ElementKind]int)
	for _, elem := range c.loading {
		if elem != nil {
			out[elem.Kind()]++
		}
	}
	return out
}

// Coordinates returns the x, y position of a lattice location on the
// core midplane, in centimeters. Position 01 of each ring sits due north
// (+y) and indices advance clockwise; ring A is the origin.
func (c Core) Coordinates(label string) (x, y float64, err error) {
	ring, index, err := parseLabel(label)
	if err != nil {
		return 0, 0, err
	}
	ringNumber := int(ring-'A') + 1
	radius := float64(ringNumber-1) * c.pitch
	var count int
	for _, r := range rings {
		if r.letter == ring {
			count = r.count
		}
	}
	angle := 2 * math.Pi * float64(index-1) / float64(count)
	return radius * math.Sin(angle), radius * math.Cos(angle), nil
}
