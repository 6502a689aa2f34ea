package material

// DefaultTemperature is the nominal pool temperature in Kelvin that every
// catalog material is evaluated at unless overridden.
const DefaultTemperature = 293.6

// must unwraps a catalog construction. The catalog compositions are fixed
// reference data, so a failure here is a programming error, not user input.
func must(m Material, err error) Material {
	if err != nil {
		panic(err)
	}
	return m
}

func ao(nuclide string, fraction float64) Component {
	return Component{Nuclide: nuclide, Fraction: fraction, Kind: AtomFraction}
}

func wo(nuclide string, fraction float64) Component {
	return Component{Nuclide: nuclide, Fraction: fraction, Kind: WeightFraction}
}

// FreshFuel is the unirradiated U-ZrH fuel meat, 8.5 wt% uranium at 20%
// enrichment with the stainless contaminants from the fabrication records.
// Composition per GA drawing TOS210J220; density 5.85 g/cm3.
func FreshFuel(opts ...Option) Material {
	components := []Component{
		wo("H1", 0.014355),
		wo("Mn55", 0.0014287),
		wo("U235", 0.0152),
		wo("U238", 0.061568),
		wo("Zr90", 0.43706),
		wo("Zr91", 0.0942),
		wo("Zr92", 0.14253),
		wo("Zr94", 0.14136),
		wo("Zr96", 0.02228),
		wo("Cr", 0.013573),
		wo("Fe", 0.049647),
		wo("Ni", 0.0067863),
	}
	opts = append([]Option{WithScatteringTables("c_H_in_ZrH", "c_Zr_in_ZrH")}, opts...)
	return must(New("fresh fuel", components, 5.85, opts...))
}

// ZirconiumFiller is the solid zirconium rod at the fuel meat centerline,
// natural isotopics at 0.0408 atom/b-cm.
func ZirconiumFiller(opts ...Option) Material {
	components := []Component{
		ao("Zr90", 0.5145),
		ao("Zr91", 0.1122),
		ao("Zr92", 0.1715),
		ao("Zr94", 0.1738),
		ao("Zr96", 0.0280),
	}
	opts = append([]Option{WithDensityUnit(AtomsPerBarnCentimeter)}, opts...)
	return must(New("zirconium filler", components, 0.0408, opts...))
}

// StainlessSteel is type 304 stainless at 0.0858 atom/b-cm, used for the
// fuel element cladding and end fittings.
func StainlessSteel(opts ...Option) Material {
	components := []Component{
		ao("C", 0.00031519),
		ao("Cr50", 0.000782),
		ao("Cr52", 0.014501),
		ao("Cr53", 0.001613),
		ao("Cr54", 0.000394),
		ao("Fe54", 0.003554),
		ao("Fe56", 0.05511),
		ao("Fe57", 0.001257),
		ao("Fe58", 0.000166),
		ao("Ni58", 0.005558),
		ao("Ni60", 0.00207),
		ao("Ni61", 8.85e-05),
		ao("Ni62", 0.000278),
		ao("Ni64", 6.85e-05),
	}
	opts = append([]Option{WithDensityUnit(AtomsPerBarnCentimeter)}, opts...)
	return must(New("stainless steel", components, 0.0858, opts...))
}

// Graphite is reactor-grade graphite at 1.6 g/cm3 with its bound-carbon
// scattering table.
func Graphite(opts ...Option) Material {
	opts = append([]Option{WithScatteringTables("c_Graphite")}, opts...)
	return must(New("graphite", []Component{ao("C", 1.0)}, 1.6, opts...))
}

// Aluminum is 6061 aluminum alloy at 2.7 g/cm3 with the trace alloying
// elements carried explicitly for activation estimates.
func Aluminum(opts ...Option) Material {
	components := []Component{
		ao("B10", 2.3945e-07),
		ao("Mg24", 0.00053511),
		ao("Mg25", 6.503e-05),
		ao("Mg26", 6.8851e-05),
		ao("Al27", 0.059015),
		ao("Si28", 0.00032153),
		ao("Si29", 1.5771e-05),
		ao("Si30", 1.0062e-05),
		ao("Cr50", 2.6872e-06),
		ao("Cr52", 4.983e-05),
		ao("Cr53", 5.5435e-06),
		ao("Cr54", 1.3544e-06),
		ao("Cu63", 5.0017e-05),
		ao("Cu65", 2.1628e-05),
	}
	return must(New("aluminum", components, 2.7, opts...))
}

// Air is dry air at 0.001225 g/cm3.
func Air(opts ...Option) Material {
	components := []Component{
		ao("N14", 0.79),
		ao("O16", 0.21),
	}
	return must(New("air", components, 0.001225, opts...))
}

// Water is light water at 1.0 g/cm3 with its bound-hydrogen scattering
// table.
func Water(opts ...Option) Material {
	components := []Component{
		ao("H1", 0.6667),
		ao("O16", 0.3333),
	}
	opts = append([]Option{WithScatteringTables("c_H_in_H2O")}, opts...)
	return must(New("water", components, 1.0, opts...))
}

// BoronCarbide is the B4C control rod absorber at 2.48 g/cm3, natural
// boron isotopics.
func BoronCarbide(opts ...Option) Material {
	components := []Component{
		ao("B10", 0.1592),
		ao("B11", 0.6408),
		ao("C", 0.2),
	}
	return must(New("boron carbide", components, 2.48, opts...))
}

// Cadmium is natural cadmium at 8.65 g/cm3.
func Cadmium(opts ...Option) Material {
	components := []Component{
		ao("Cd106", 0.0125),
		ao("Cd108", 0.0089),
		ao("Cd110", 0.1249),
		ao("Cd111", 0.128),
		ao("Cd112", 0.2413),
		ao("Cd113", 0.1222),
		ao("Cd114", 0.2873),
		ao("Cd116", 0.0749),
	}
	return must(New("cadmium", components, 8.65, opts...))
}

// Molybdenum is natural molybdenum at 10.3 g/cm3, used for the disc under
// the fuel meat.
func Molybdenum(opts ...Option) Material {
	components := []Component{
		ao("Mo92", 0.1477),
		ao("Mo94", 0.0923),
		ao("Mo95", 0.159),
		ao("Mo96", 0.1668),
		ao("Mo97", 0.0956),
		ao("Mo98", 0.2419),
		ao("Mo100", 0.0967),
	}
	return must(New("molybdenum", components, 10.3, opts...))
}
