package material

// Option adjusts a material under construction. Options apply before
// validation, so an out-of-range option value fails New the same way a bad
// positional argument would.
type Option func(*Material)

// WithTemperature sets the material temperature in Kelvin.
func WithTemperature(kelvin float64) Option {
	return func(m *Material) { m.Temperature = kelvin }
}

// WithDensity overrides the density. The catalog factories use this to
// express variants such as the denser fuel-follower meat without repeating
// the full composition.
func WithDensity(density float64) Option {
	return func(m *Material) { m.Density = density }
}

// WithDensityUnit sets the unit the density is expressed in.
func WithDensityUnit(unit DensityUnit) Option {
	return func(m *Material) { m.DensityUnit = unit }
}

// WithScatteringTables attaches the S(a,b) thermal scattering library
// identifiers.
func WithScatteringTables(tables ...string) Option {
	return func(m *Material) { m.ScatteringTables = append([]string(nil), tables...) }
}
