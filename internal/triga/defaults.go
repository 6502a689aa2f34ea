package triga

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/units"
)

// Reference dimensions for the standard elements, from the General Atomics
// fuel element drawings. Drawing values are inch diameters; the constants
// below are centimeter radii and lengths.
const (
	// FuelCladdingOuterRadius and FuelCladdingThickness describe the
	// 1.475 in OD, 0.020 in wall stainless tube.
	FuelCladdingOuterRadius = 1.475 * 0.5 * units.CmPerInch
	FuelCladdingThickness   = 0.020 * units.CmPerInch

	// FuelMeatInnerRadius doubles as the zirconium filler rod radius.
	FuelMeatInnerRadius = 0.25 * 0.5 * units.CmPerInch
	FuelMeatOuterRadius = 1.435 * 0.5 * units.CmPerInch
	FuelMeatLength      = 15.0 * units.CmPerInch

	fuelReflectorRadius         = 1.430 * 0.5 * units.CmPerInch
	fuelUpperReflectorThickness = 2.56 * units.CmPerInch
	fuelLowerReflectorThickness = 3.72 * units.CmPerInch

	fuelDiscRadius    = 1.431 * 0.5 * units.CmPerInch
	fuelDiscThickness = 0.031 * units.CmPerInch

	fuelUpperAirGapLength = 0.5 * units.CmPerInch

	// The end fitting lengths come from the as-built survey and are
	// recorded directly in centimeters.
	fuelUpperEndFittingLength = 7.3552
	fuelLowerEndFittingLength = 7.6209

	// graphiteMeatLength equals the fuel element interior length, summed
	// in the same bottom-to-top order InteriorLength uses.
	graphiteMeatLength = fuelLowerReflectorThickness +
		fuelDiscThickness +
		FuelMeatLength +
		fuelUpperReflectorThickness +
		fuelUpperAirGapLength
)

// must unwraps a default construction. Defaults are fixed reference data,
// so a failure here is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// DefaultFuelElementConfig returns the reference fuel element parts.
// Callers adjust fields and pass the result to NewFuelElement.
func DefaultFuelElementConfig() FuelElementConfig {
	steel := material.StainlessSteel()
	graphite := material.Graphite()
	return FuelElementConfig{
		Cladding:        must(NewCladding(FuelCladdingOuterRadius, FuelCladdingThickness, steel)),
		Meat:            must(NewFuelMeat(FuelMeatInnerRadius, FuelMeatOuterRadius, FuelMeatLength, material.FreshFuel())),
		ZirconiumRod:    must(NewZirconiumRod(FuelMeatInnerRadius, material.ZirconiumFiller())),
		UpperReflector:  must(NewGraphiteReflector(fuelReflectorRadius, fuelUpperReflectorThickness, graphite)),
		LowerReflector:  must(NewGraphiteReflector(fuelReflectorRadius, fuelLowerReflectorThickness, graphite)),
		MolybdenumDisc:  must(NewMolybdenumDisc(fuelDiscRadius, fuelDiscThickness, material.Molybdenum())),
		UpperAirGap:     must(NewAirGap(fuelUpperAirGapLength, material.Air())),
		UpperEndFitting: must(NewEndFitting(fuelUpperEndFittingLength, steel)),
		LowerEndFitting: must(NewEndFitting(fuelLowerEndFittingLength, steel)),
	}
}

// DefaultFuelElement returns the reference fuel element.
func DefaultFuelElement() FuelElement {
	return must(NewFuelElement(DefaultFuelElementConfig()))
}

// DefaultGraphiteElementConfig returns the reference dummy element parts:
// the fuel element envelope with aluminum in place of stainless and solid
// graphite filling the interior span.
func DefaultGraphiteElementConfig() GraphiteElementConfig {
	aluminum := material.Aluminum()
	return GraphiteElementConfig{
		Cladding:        must(NewCladding(FuelCladdingOuterRadius, FuelCladdingThickness, aluminum)),
		Meat:            must(NewGraphiteMeat(FuelMeatOuterRadius, graphiteMeatLength, material.Graphite())),
		UpperEndFitting: must(NewEndFitting(fuelUpperEndFittingLength, aluminum)),
		LowerEndFitting: must(NewEndFitting(fuelLowerEndFittingLength, aluminum)),
	}
}

// DefaultGraphiteElement returns the reference dummy element.
func DefaultGraphiteElement() GraphiteElement {
	return must(NewGraphiteElement(DefaultGraphiteElementConfig()))
}
