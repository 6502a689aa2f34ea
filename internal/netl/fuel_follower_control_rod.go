package netl

import (
	"fmt"
	"math"

	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// FuelFollowerControlRod is one of the motor-driven rods (the shims and
// the regulating rod): a borated graphite absorber over a fueled follower
// in a stainless tube. The thirteen axial sections run, top to bottom:
// upper plug, upper air gap, upper magneform, gap, absorber, middle
// magneform, gap, fuel follower around its zirconium rod, lower
// magneform, lower air gap, lower plug.
type FuelFollowerControlRod struct {
	Cladding         triga.Cladding         `json:"cladding"`
	UpperPlug        triga.ElementPlug      `json:"upper_plug"`
	UpperAirGap      triga.AirGap           `json:"upper_air_gap"`
	UpperMagneform   triga.MagneformFitting `json:"upper_magneform"`
	AboveAbsorberGap triga.AirGap           `json:"above_absorber_gap"`
	Absorber         triga.Absorber         `json:"absorber"`
	MiddleMagneform  triga.MagneformFitting `json:"middle_magneform"`
	AboveFollowerGap triga.AirGap           `json:"above_follower_gap"`
	ZirconiumRod     triga.ZirconiumRod     `json:"zirconium_rod"`
	FuelFollower     triga.FuelMeat         `json:"fuel_follower"`
	LowerMagneform   triga.MagneformFitting `json:"lower_magneform"`
	LowerAirGap      triga.AirGap           `json:"lower_air_gap"`
	LowerPlug        triga.ElementPlug      `json:"lower_plug"`

	// MaxWithdrawal is the full stroke in centimeters.
	MaxWithdrawal float64 `json:"max_withdrawal_cm"`
	// FractionWithdrawn is the rod position as a fraction of the full
	// stroke, in [0, 1].
	FractionWithdrawn float64 `json:"fraction_withdrawn"`
	// CoreCenterlineOffset is the signed distance from the core
	// centerline to the absorber centerline when the rod is seated.
	CoreCenterlineOffset float64 `json:"core_centerline_offset_cm"`
}

// FuelFollowerControlRodConfig carries the parts of a fuel-follower rod
// under construction. Leave FuelFollower.OuterRadius zero to have it
// derived from the cladding bore; a nonzero value must match the bore.
type FuelFollowerControlRodConfig struct {
	Cladding             triga.Cladding
	UpperPlug            triga.ElementPlug
	UpperAirGap          triga.AirGap
	UpperMagneform       triga.MagneformFitting
	AboveAbsorberGap     triga.AirGap
	Absorber             triga.Absorber
	MiddleMagneform      triga.MagneformFitting
	AboveFollowerGap     triga.AirGap
	ZirconiumRod         triga.ZirconiumRod
	FuelFollower         triga.FuelMeat
	LowerMagneform       triga.MagneformFitting
	LowerAirGap          triga.AirGap
	LowerPlug            triga.ElementPlug
	MaxWithdrawal        float64
	FractionWithdrawn    float64
	CoreCenterlineOffset float64
}

// NewFuelFollowerControlRod validates the parts and resolves the fuel
// follower outer radius against the cladding bore.
func NewFuelFollowerControlRod(cfg FuelFollowerControlRodConfig) (FuelFollowerControlRod, error) {
	if err := cfg.Cladding.Validate(); err != nil {
		return FuelFollowerControlRod{}, err
	}
	bore := cfg.Cladding.InnerRadius()
	if cfg.FuelFollower.OuterRadius == 0 {
		cfg.FuelFollower.OuterRadius = bore
	} else if math.Abs(cfg.FuelFollower.OuterRadius-bore) > geomTol {
		return FuelFollowerControlRod{}, fmt.Errorf(
			"fuel follower control rod: follower outer radius %g must match cladding bore %g: %w",
			cfg.FuelFollower.OuterRadius, bore, validate.ErrInconsistentGeometry)
	}

	r := FuelFollowerControlRod{
		Cladding:             cfg.Cladding,
		UpperPlug:            cfg.UpperPlug,
		UpperAirGap:          cfg.UpperAirGap,
		UpperMagneform:       cfg.UpperMagneform,
		AboveAbsorberGap:     cfg.AboveAbsorberGap,
		Absorber:             cfg.Absorber,
		MiddleMagneform:      cfg.MiddleMagneform,
		AboveFollowerGap:     cfg.AboveFollowerGap,
		ZirconiumRod:         cfg.ZirconiumRod,
		FuelFollower:         cfg.FuelFollower,
		LowerMagneform:       cfg.LowerMagneform,
		LowerAirGap:          cfg.LowerAirGap,
		LowerPlug:            cfg.LowerPlug,
		MaxWithdrawal:        cfg.MaxWithdrawal,
		FractionWithdrawn:    cfg.FractionWithdrawn,
		CoreCenterlineOffset: cfg.CoreCenterlineOffset,
	}
	if err := r.validate(); err != nil {
		return FuelFollowerControlRod{}, err
	}
	return r, nil
}

func (r FuelFollowerControlRod) validate() error {
	if err := validateParts(
		r.Cladding, r.UpperPlug, r.UpperAirGap, r.UpperMagneform,
		r.AboveAbsorberGap, r.Absorber, r.MiddleMagneform, r.AboveFollowerGap,
		r.ZirconiumRod, r.FuelFollower, r.LowerMagneform, r.LowerAirGap, r.LowerPlug,
	); err != nil {
		return err
	}
	bore := r.Cladding.InnerRadius()
	if math.Abs(r.FuelFollower.OuterRadius-bore) > geomTol {
		return fmt.Errorf("fuel follower control rod: follower outer radius %g must match cladding bore %g: %w",
			r.FuelFollower.OuterRadius, bore, validate.ErrInconsistentGeometry)
	}
	if math.Abs(r.ZirconiumRod.Radius-r.FuelFollower.InnerRadius) > geomTol {
		return fmt.Errorf("fuel follower control rod: zirconium rod radius %g must match follower inner radius %g: %w",
			r.ZirconiumRod.Radius, r.FuelFollower.InnerRadius, validate.ErrInconsistentGeometry)
	}
	if err := validate.Positive("fuel follower control rod", "max withdrawal", r.MaxWithdrawal); err != nil {
		return err
	}
	return validate.Fraction("fuel follower control rod", "fraction withdrawn", r.FractionWithdrawn)
}

// Kind implements triga.Element.
func (r FuelFollowerControlRod) Kind() triga.ElementKind {
	return triga.KindFuelFollowerControlRod
}

// State reports whether the rod is seated or anywhere off its seat.
func (r FuelFollowerControlRod) State() RodState { return rodState(r.FractionWithdrawn) }

// Withdrawal is the rod position in centimeters above the seated
// position.
func (r FuelFollowerControlRod) Withdrawal() float64 {
	return r.FractionWithdrawn * r.MaxWithdrawal
}

// MidplaneSection reports which axial section sits at the core midplane:
// the absorber when seated, the fueled follower otherwise.
func (r FuelFollowerControlRod) MidplaneSection() RodSection {
	if r.State() == RodInserted {
		return SectionAbsorber
	}
	return SectionFuelFollower
}
