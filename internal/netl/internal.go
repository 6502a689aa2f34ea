package netl

// geomTol absorbs float rounding when reference dimensions that agree on
// paper are compared after separate unit conversions.
const geomTol = 1e-9

func validateParts(parts ...interface{ Validate() error }) error {
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// must unwraps a default construction. Defaults are fixed reference data,
// so a failure here is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
