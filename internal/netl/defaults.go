package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/units"
)

// Facility reference dimensions, from the NETL safety analysis report
// drawings. Drawing values are inch diameters unless noted; the constants
// are centimeter radii and lengths.
const (
	// LatticePitch is the center-to-center spacing between adjacent
	// lattice positions.
	LatticePitch = 1.714 * units.CmPerInch

	// DefaultRodFractionWithdrawn is the nominal critical bank position,
	// 524 units on the 960-unit rod drive scale.
	DefaultRodFractionWithdrawn = 524.0 / 960.0

	// UpperGridPlateDistance and LowerGridPlateDistance run from the core
	// midplane to the plate face nearer the core.
	UpperGridPlateThickness = 0.62 * units.CmPerInch
	UpperGridPlateDistance  = 12.75 * units.CmPerInch
	LowerGridPlateThickness = 1.25 * units.CmPerInch
	LowerGridPlateDistance  = 13.06 * units.CmPerInch

	upperPlateFuelPenetration  = 1.505 * 0.5 * units.CmPerInch
	lowerPlateFuelPenetration  = 1.25 * 0.5 * units.CmPerInch
	plateControlRodPenetration = 1.505 * units.CmPerInch

	// The modeled pool section, already in centimeters.
	PoolRadius = 90.0
	PoolHeight = 160.0

	// sourceHolderStandoff is the as-measured gap between the holder
	// bottom and the lower grid plate, in centimeters.
	sourceHolderStandoff = 1.1934
)

// DefaultCentralThimble returns the reference central thimble, running
// the full modeled pool height.
func DefaultCentralThimble() CentralThimble {
	return must(NewCentralThimble(
		1.33*0.5*units.CmPerInch,
		1.5*0.5*units.CmPerInch,
		PoolHeight,
		material.Aluminum(),
	))
}

// DefaultTransientRodConfig returns the reference transient rod parts,
// fully seated.
func DefaultTransientRodConfig() TransientRodConfig {
	aluminum := material.Aluminum()
	return TransientRodConfig{
		Cladding:             must(triga.NewCladding(1.25*0.5*units.CmPerInch, 0.028*units.CmPerInch, aluminum)),
		FillGas:              material.Air(),
		UpperPlug:            must(triga.NewElementPlug(0.5*units.CmPerInch, aluminum)),
		UpperMagneform:       must(triga.NewMagneformFitting(1.0*units.CmPerInch, aluminum)),
		Absorber:             must(triga.NewAbsorber(1.187*0.5*units.CmPerInch, 15.0*units.CmPerInch, material.BoronCarbide())),
		LowerMagneform:       must(triga.NewMagneformFitting(1.0*units.CmPerInch, aluminum)),
		AirFollower:          must(triga.NewAirGap(19.75*units.CmPerInch, material.Air())),
		LowerPlug:            must(triga.NewElementPlug(0.5*units.CmPerInch, aluminum)),
		MaxWithdrawal:        15.0 * units.CmPerInch,
		FractionWithdrawn:    0,
		CoreCenterlineOffset: 0,
	}
}

// DefaultTransientRod returns the reference transient rod.
func DefaultTransientRod() TransientRod {
	return must(NewTransientRod(DefaultTransientRodConfig()))
}

// DefaultFuelFollowerControlRodConfig returns the reference
// fuel-follower rod parts, fully seated. The follower outer radius is
// left for NewFuelFollowerControlRod to derive from the cladding bore,
// and the follower meat carries the denser follower fuel loading.
func DefaultFuelFollowerControlRodConfig() FuelFollowerControlRodConfig {
	steel := material.StainlessSteel()
	return FuelFollowerControlRodConfig{
		Cladding:         must(triga.NewCladding(1.31*0.5*units.CmPerInch, 0.02*units.CmPerInch, steel)),
		UpperPlug:        must(triga.NewElementPlug(1.5*units.CmPerInch, steel)),
		UpperAirGap:      must(triga.NewAirGap(3.5*units.CmPerInch, material.Air())),
		UpperMagneform:   must(triga.NewMagneformFitting(0.5*units.CmPerInch, steel)),
		AboveAbsorberGap: must(triga.NewAirGap(0.125*units.CmPerInch, material.Air())),
		Absorber:         must(triga.NewAbsorber(1.3*0.5*units.CmPerInch, 15.0*units.CmPerInch, material.BoronCarbide())),
		MiddleMagneform:  must(triga.NewMagneformFitting(0.5*units.CmPerInch, steel)),
		AboveFollowerGap: must(triga.NewAirGap(0.25*units.CmPerInch, material.Air())),
		ZirconiumRod:     must(triga.NewZirconiumRod(0.25*0.5*units.CmPerInch, material.ZirconiumFiller())),
		FuelFollower: triga.FuelMeat{
			InnerRadius: 0.25 * 0.5 * units.CmPerInch,
			Length:      15.0 * units.CmPerInch,
			Material:    material.FreshFuel(material.WithDensity(6.0124)),
		},
		LowerMagneform:       must(triga.NewMagneformFitting(1.0*units.CmPerInch, steel)),
		LowerAirGap:          must(triga.NewAirGap(5.375*units.CmPerInch, material.Air())),
		LowerPlug:            must(triga.NewElementPlug(0.5*units.CmPerInch, steel)),
		MaxWithdrawal:        15.0 * units.CmPerInch,
		FractionWithdrawn:    0,
		CoreCenterlineOffset: 0,
	}
}

// DefaultFuelFollowerControlRod returns the reference fuel-follower rod.
func DefaultFuelFollowerControlRod() FuelFollowerControlRod {
	return must(NewFuelFollowerControlRod(DefaultFuelFollowerControlRodConfig()))
}

// DefaultUpperGridPlate returns the reference upper grid plate.
func DefaultUpperGridPlate() GridPlate {
	return must(NewGridPlate(
		UpperGridPlateThickness,
		upperPlateFuelPenetration,
		plateControlRodPenetration,
		UpperGridPlateDistance,
		material.Aluminum(),
	))
}

// DefaultLowerGridPlate returns the reference lower grid plate.
func DefaultLowerGridPlate() GridPlate {
	return must(NewGridPlate(
		LowerGridPlateThickness,
		lowerPlateFuelPenetration,
		plateControlRodPenetration,
		LowerGridPlateDistance,
		material.Aluminum(),
	))
}

// DefaultPool returns the modeled pool section.
func DefaultPool() Pool {
	return must(NewPool(PoolRadius, PoolHeight, material.Water()))
}

// DefaultShroud returns the reference core shroud.
func DefaultShroud() Shroud {
	return must(NewShroud(
		0.1875*units.CmPerInch,
		23.13*units.CmPerInch,
		10.75*units.CmPerInch,
		10.21875*units.CmPerInch,
		material.Aluminum(),
	))
}

// DefaultReflectorCanister returns the reference graphite reflector.
func DefaultReflectorCanister() ReflectorCanister {
	return must(NewReflectorCanister(
		42.0*0.5*units.CmPerInch,
		23.13*units.CmPerInch,
		0.565*units.CmPerInch,
		material.Graphite(),
	))
}

// DefaultRotarySpecimenRack returns the reference rotary specimen rack.
func DefaultRotarySpecimenRack() RotarySpecimenRack {
	tube := must(triga.NewCladding(1.0*0.5*units.CmPerInch, 0.058*units.CmPerInch, material.Aluminum()))
	return must(NewRotarySpecimenRack(
		28.625*0.5*units.CmPerInch,
		10.8174*units.CmPerInch,
		40,
		26.312*0.5*units.CmPerInch,
		tube,
		material.Air(),
	))
}

// DefaultSourceHolder returns the reference source holder. Its length
// spans from the standoff above the lower grid plate up through the
// upper plate.
func DefaultSourceHolder() SourceHolder {
	length := UpperGridPlateDistance + LowerGridPlateDistance - sourceHolderStandoff + UpperGridPlateThickness
	return must(NewSourceHolder(SourceHolderConfig{
		BodyRadius:                  1.435 * 0.5 * units.CmPerInch,
		Length:                      length,
		CavityRadius:                0.981 * 0.5 * units.CmPerInch,
		CavityLength:                3.0 * units.CmPerInch,
		CavityOffset:                0,
		CoreCenterlineOffset:        0,
		DistanceAboveLowerGridPlate: sourceHolderStandoff,
		Body:                        material.Aluminum(),
		Cavity:                      material.Air(),
	}))
}

// DefaultBeamPorts returns the five beam ports as four tube records; BP1
// and BP5 are colinear and share one piercing tube.
func DefaultBeamPorts() []BeamPort {
	const (
		innerRadius = 6.065 * 0.5 * units.CmPerInch
		outerRadius = 6.625 * units.CmPerInch
	)
	aluminum := material.Aluminum()

	bp2Termination := YPlane(-12.621).Rotate(RotationDegrees{
		{20, 125, 90},
		{100, 20, 90},
		{90, 90, 0},
	})
	bp3Termination := YPlane(26.43188)
	bp4Termination := Plane{A: 0.866025403784, B: 0.5, C: 0, D: -26.43188}

	return []BeamPort{
		must(NewBeamPort(BeamPortConfig{
			Name:        "BP1/5",
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
			Translation: [3]float64{35.2425, 0, -6.985},
			Rotation: RotationDegrees{
				{90, 180, 90},
				{0, 90, 90},
				{90, 90, 0},
			},
			Material: aluminum,
		})),
		must(NewBeamPort(BeamPortConfig{
			Name:        "BP2",
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
			Translation: [3]float64{6.222, 35.255, -6.985},
			Rotation: RotationDegrees{
				{150, 60, 90},
				{120, 150, 90},
				{90, 90, 0},
			},
			Termination: &bp2Termination,
			Material:    aluminum,
		})),
		must(NewBeamPort(BeamPortConfig{
			Name:        "BP3",
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
			Translation: [3]float64{0, 0, -6.985},
			Termination: &bp3Termination,
			Material:    aluminum,
		})),
		must(NewBeamPort(BeamPortConfig{
			Name:        "BP4",
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
			Translation: [3]float64{-13.216, 22.871, -6.985},
			Rotation: RotationDegrees{
				{75, 60, 90},
				{120, 75, 90},
				{90, 90, 0},
			},
			Termination: &bp4Termination,
			Material:    aluminum,
		})),
	}
}

// waterHoles are the positions left open in the nominal loading.
var waterHoles = []string{
	"E-11", "F-13", "F-14",
	"G-01", "G-07", "G-13", "G-19", "G-25", "G-31", "G-34",
}

// PositionSourceHolder is where the startup source sits in the nominal
// loading.
const PositionSourceHolder = "G-32"

// DefaultLoading returns the nominal core loading: fuel in every
// non-reserved position except the water holes and the source holder.
func DefaultLoading() map[string]triga.Element {
	fuel := triga.DefaultFuelElement()
	loading := make(map[string]triga.Element, 127)
	for _, label := range Positions() {
		if IsReserved(label) {
			continue
		}
		loading[label] = fuel
	}
	for _, label := range waterHoles {
		loading[label] = nil
	}
	loading[PositionSourceHolder] = DefaultSourceHolder()
	return loading
}

// DefaultCore returns the nominal core.
func DefaultCore() Core {
	return must(NewCore(LatticePitch, DefaultLoading()))
}

// DefaultReactorConfig returns the complete reference reactor with all
// four rods banked at the nominal critical position.
func DefaultReactorConfig() ReactorConfig {
	transientCfg := DefaultTransientRodConfig()
	transientCfg.FractionWithdrawn = DefaultRodFractionWithdrawn
	ffcrCfg := DefaultFuelFollowerControlRodConfig()
	ffcrCfg.FractionWithdrawn = DefaultRodFractionWithdrawn
	ffcr := must(NewFuelFollowerControlRod(ffcrCfg))

	return ReactorConfig{
		Core:           DefaultCore(),
		CentralThimble: DefaultCentralThimble(),
		TransientRod:   must(NewTransientRod(transientCfg)),
		Shim1:          ffcr,
		Shim2:          ffcr,
		RegulatingRod:  ffcr,
		UpperGridPlate: DefaultUpperGridPlate(),
		LowerGridPlate: DefaultLowerGridPlate(),
		Pool:           DefaultPool(),
		Shroud:         DefaultShroud(),
		Reflector:      DefaultReflectorCanister(),
		SpecimenRack:   DefaultRotarySpecimenRack(),
		BeamPorts:      DefaultBeamPorts(),
	}
}

// DefaultReactor returns the reference reactor.
func DefaultReactor() Reactor {
	return must(NewReactor(DefaultReactorConfig()))
}
