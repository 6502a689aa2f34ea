package validate

import "errors"

// Sentinel errors for every validation failure the data model can raise.
// Constructors wrap these with the offending component and field via
// fmt.Errorf("...: %w", Err...); callers match with errors.Is. Construction
// either completes with a fully valid record or fails with one of these.
var (
	// ErrInvalidDimension reports a declared length, radius, or thickness
	// that is not positive, or an inner/outer radius pair out of order.
	ErrInvalidDimension = errors.New("triga: invalid dimension")

	// ErrInvalidInput reports a scalar parameter outside its documented
	// domain, e.g. a negative temperature or a withdrawal fraction
	// outside [0, 1].
	ErrInvalidInput = errors.New("triga: invalid input")

	// ErrInvalidLocation reports a core-loading key that is not a
	// recognized lattice position.
	ErrInvalidLocation = errors.New("triga: invalid core location")

	// ErrReservedLocation reports a core-loading key that collides with a
	// position reserved for the control rods or the central thimble.
	ErrReservedLocation = errors.New("triga: reserved core location")

	// ErrInconsistentGeometry reports a derived-must-match field supplied
	// with a value that contradicts its derivation.
	ErrInconsistentGeometry = errors.New("triga: inconsistent geometry")
)
