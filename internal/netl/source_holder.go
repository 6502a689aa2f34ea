package netl

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// SourceHolder is the startup neutron source container: a solid aluminum
// cylinder with an air cavity machined for the source capsule. It loads
// into a grid position like a fuel element but hangs from the upper grid
// plate, so it sits a short distance above the lower plate.
type SourceHolder struct {
	BodyRadius float64 `json:"body_radius_cm"`
	Length     float64 `json:"length_cm"`

	CavityRadius float64 `json:"cavity_radius_cm"`
	CavityLength float64 `json:"cavity_length_cm"`
	// CavityOffset shifts the cavity center along the holder axis,
	// positive toward the top.
	CavityOffset float64 `json:"cavity_offset_cm"`

	// CoreCenterlineOffset is the signed distance from the core
	// centerline to the holder centerline.
	CoreCenterlineOffset float64 `json:"core_centerline_offset_cm"`

	// DistanceAboveLowerGridPlate is the standoff between the holder
	// bottom and the lower grid plate.
	DistanceAboveLowerGridPlate float64 `json:"distance_above_lower_grid_plate_cm"`

	Body   material.Material `json:"body"`
	Cavity material.Material `json:"cavity"`
}

// SourceHolderConfig carries the fields of a source holder under
// construction.
type SourceHolderConfig struct {
	BodyRadius                  float64
	Length                      float64
	CavityRadius                float64
	CavityLength                float64
	CavityOffset                float64
	CoreCenterlineOffset        float64
	DistanceAboveLowerGridPlate float64
	Body                        material.Material
	Cavity                      material.Material
}

// NewSourceHolder validates the holder. The cavity must fit entirely
// inside the body.
func NewSourceHolder(cfg SourceHolderConfig) (SourceHolder, error) {
	h := SourceHolder{
		BodyRadius:                  cfg.BodyRadius,
		Length:                      cfg.Length,
		CavityRadius:                cfg.CavityRadius,
		CavityLength:                cfg.CavityLength,
		CavityOffset:                cfg.CavityOffset,
		CoreCenterlineOffset:        cfg.CoreCenterlineOffset,
		DistanceAboveLowerGridPlate: cfg.DistanceAboveLowerGridPlate,
		Body:                        cfg.Body,
		Cavity:                      cfg.Cavity,
	}
	if err := h.validate(); err != nil {
		return SourceHolder{}, err
	}
	return h, nil
}

func (h SourceHolder) validate() error {
	if err := validate.Positive("source holder", "body radius", h.BodyRadius); err != nil {
		return err
	}
	if err := validate.Positive("source holder", "length", h.Length); err != nil {
		return err
	}
	if err := validate.Positive("source holder", "cavity radius", h.CavityRadius); err != nil {
		return err
	}
	if err := validate.Positive("source holder", "cavity length", h.CavityLength); err != nil {
		return err
	}
	if err := validate.NonNegative("source holder", "distance above lower grid plate", h.DistanceAboveLowerGridPlate); err != nil {
		return err
	}
	if h.CavityRadius >= h.BodyRadius {
		return fmt.Errorf("source holder: cavity radius %g must be smaller than body radius %g: %w",
			h.CavityRadius, h.BodyRadius, validate.ErrInconsistentGeometry)
	}
	halfSpan := h.Length / 2
	if h.CavityOffset+h.CavityLength/2 > halfSpan+geomTol || h.CavityOffset-h.CavityLength/2 < -halfSpan-geomTol {
		return fmt.Errorf("source holder: cavity overruns the body length %g: %w",
			h.Length, validate.ErrInconsistentGeometry)
	}
	return nil
}

// Kind implements triga.Element.
func (h SourceHolder) Kind() triga.ElementKind { return triga.KindSourceHolder }
