package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// TransientRod is the pneumatically driven pulse rod: a borated graphite
// absorber over an air-filled follower in an aluminum tube. When the rod
// fires, the follower takes the absorber's place in the core. The axial
// sections run, top to bottom: upper plug, upper magneform, absorber,
// lower magneform, air follower, lower plug, with FillGas filling the
// space between the stack and the cladding.
type TransientRod struct {
	Cladding       triga.Cladding         `json:"cladding"`
	FillGas        material.Material      `json:"fill_gas"`
	UpperPlug      triga.ElementPlug      `json:"upper_plug"`
	UpperMagneform triga.MagneformFitting `json:"upper_magneform"`
	Absorber       triga.Absorber         `json:"absorber"`
	LowerMagneform triga.MagneformFitting `json:"lower_magneform"`
	AirFollower    triga.AirGap           `json:"air_follower"`
	LowerPlug      triga.ElementPlug      `json:"lower_plug"`

	// MaxWithdrawal is the full stroke in centimeters.
	MaxWithdrawal float64 `json:"max_withdrawal_cm"`
	// FractionWithdrawn is the rod position as a fraction of the full
	// stroke, in [0, 1].
	FractionWithdrawn float64 `json:"fraction_withdrawn"`
	// CoreCenterlineOffset is the signed distance from the core
	// centerline to the absorber centerline when the rod is seated.
	CoreCenterlineOffset float64 `json:"core_centerline_offset_cm"`
}

// TransientRodConfig carries the parts of a transient rod under
// construction.
type TransientRodConfig struct {
	Cladding             triga.Cladding
	FillGas              material.Material
	UpperPlug            triga.ElementPlug
	UpperMagneform       triga.MagneformFitting
	Absorber             triga.Absorber
	LowerMagneform       triga.MagneformFitting
	AirFollower          triga.AirGap
	LowerPlug            triga.ElementPlug
	MaxWithdrawal        float64
	FractionWithdrawn    float64
	CoreCenterlineOffset float64
}

// NewTransientRod validates the parts, the stroke, and the rod position.
func NewTransientRod(cfg TransientRodConfig) (TransientRod, error) {
	r := TransientRod{
		Cladding:             cfg.Cladding,
		FillGas:              cfg.FillGas,
		UpperPlug:            cfg.UpperPlug,
		UpperMagneform:       cfg.UpperMagneform,
		Absorber:             cfg.Absorber,
		LowerMagneform:       cfg.LowerMagneform,
		AirFollower:          cfg.AirFollower,
		LowerPlug:            cfg.LowerPlug,
		MaxWithdrawal:        cfg.MaxWithdrawal,
		FractionWithdrawn:    cfg.FractionWithdrawn,
		CoreCenterlineOffset: cfg.CoreCenterlineOffset,
	}
	if err := r.validate(); err != nil {
		return TransientRod{}, err
	}
	return r, nil
}

func (r TransientRod) validate() error {
	if err := validateParts(r.Cladding, r.UpperPlug, r.UpperMagneform, r.Absorber,
		r.LowerMagneform, r.AirFollower, r.LowerPlug); err != nil {
		return err
	}
	if err := validate.Positive("transient rod", "max withdrawal", r.MaxWithdrawal); err != nil {
		return err
	}
	return validate.Fraction("transient rod", "fraction withdrawn", r.FractionWithdrawn)
}

// Kind implements triga.Element.
func (r TransientRod) Kind() triga.ElementKind { return triga.KindTransientRod }

// State reports whether the rod is seated or anywhere off its seat.
func (r TransientRod) State() RodState { return rodState(r.FractionWithdrawn) }

// Withdrawal is the rod position in centimeters above the seated
// position.
func (r TransientRod) Withdrawal() float64 {
	return r.FractionWithdrawn * r.MaxWithdrawal
}

// MidplaneSection reports which axial section sits at the core midplane:
// the absorber when seated, the air follower otherwise.
func (r TransientRod) MidplaneSection() RodSection {
	if r.State() == RodInserted {
		return SectionAbsorber
	}
	return SectionAirFollower
}
