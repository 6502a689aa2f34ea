// Package validate implements the dimension and domain checks shared by
// every component record in the data model. Nearly every component repeats
// the same contract (all declared dimensions positive, inner/outer radius
// pairs properly ordered), so the checks live here once, parameterized by
// the component and field names used in the error message.
package validate

import "fmt"

// Positive checks that a declared length, radius, or thickness is > 0.
func Positive(component, field string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s %s must be positive: %w", component, field, ErrInvalidDimension)
	}
	return nil
}

// PositiveCount checks that a declared count (e.g. number of specimen
// tubes) is > 0.
func PositiveCount(component, field string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s %s must be positive: %w", component, field, ErrInvalidDimension)
	}
	return nil
}

// NonNegative checks that a signed distance is >= 0.
func NonNegative(component, field string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s %s must be non-negative: %w", component, field, ErrInvalidDimension)
	}
	return nil
}

// OrderedRadii checks an inner/outer radius pair: the inner radius must be
// positive and the outer radius strictly larger.
func OrderedRadii(component string, inner, outer float64) error {
	if err := Positive(component, "inner radius", inner); err != nil {
		return err
	}
	if outer <= inner {
		return fmt.Errorf("%s outer radius must be larger than inner radius: %w", component, ErrInvalidDimension)
	}
	return nil
}

// Temperature checks that a temperature in Kelvin is >= 0.
func Temperature(component string, kelvin float64) error {
	if kelvin < 0 {
		return fmt.Errorf("%s temperature must be non-negative in Kelvin: %w", component, ErrInvalidInput)
	}
	return nil
}

// Fraction checks that a normalized quantity lies within [0, 1].
func Fraction(component, field string, value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("%s %s must be within [0, 1]: %w", component, field, ErrInvalidInput)
	}
	return nil
}
