// Package units holds the unit conventions shared by every record in the
// data model: lengths and radii are centimeters, temperatures are Kelvin,
// and densities are tagged with an explicit unit.
package units

// CmPerInch is the exact conversion constant used throughout the
// reference-sourced default dimensions. Engineering drawings for the NETL
// facility are dimensioned in inches; the data model stores centimeters.
const CmPerInch = 2.54
