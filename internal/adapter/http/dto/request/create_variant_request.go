package request

import (
	"strings"

	"tagshop_variants/internal/domain/entities"
)

// VariantConfigRequest is the nested config object sent by current
// storefront revisions.
type VariantConfigRequest struct {
	Sides   string    `json:"sides"`
	HoleMM  FlexFloat `json:"holeMM"`
	Corner  string    `json:"corner"`
	CornerR FlexFloat `json:"cornerR"`
	Cord    string    `json:"cord"`
	Supply  string    `json:"supply"`
}

// CreateVariantRequest is the /create-variant payload.
//
// Two call shapes coexist: the legacy flat shape carries the option fields at
// the top level, newer revisions nest them under "config". When both are
// present the nested value wins field by field.
type CreateVariantRequest struct {
	ProductID FlexString `json:"product_id"`
	Width     FlexFloat  `json:"width"`
	Height    FlexFloat  `json:"height"`
	Material  string     `json:"material"`
	Qty       FlexInt    `json:"qty"`

	// Legacy flat shape.
	Sides   string    `json:"sides"`
	HoleMM  FlexFloat `json:"holeMM"`
	Corner  string    `json:"corner"`
	CornerR FlexFloat `json:"cornerR"`
	Cord    string    `json:"cord"`
	Supply  string    `json:"supply"`

	Config *VariantConfigRequest `json:"config"`
}

func (r CreateVariantRequest) ResolveProductID() string {
	return strings.TrimSpace(string(r.ProductID))
}

// HasDimensions reports whether both dimensions arrived with usable values.
// Zero or missing width/height is a validation error, matching the original
// endpoint contract, even though downstream normalization could coerce them.
func (r CreateVariantRequest) HasDimensions() bool {
	return r.Width > 0 && r.Height > 0
}

// ResolveConfiguration collapses both call shapes into one canonical
// Configuration and applies the coercion defaults.
//
// Quantity is passed through as sent: an absent or non-positive quantity must
// reach the pricing engine so it can return the bare floor.
func (r CreateVariantRequest) ResolveConfiguration() entities.Configuration {
	sides := r.Sides
	holeMM := r.HoleMM
	corner := r.Corner
	cornerR := r.CornerR
	cord := r.Cord
	supply := r.Supply

	if c := r.Config; c != nil {
		if c.Sides != "" {
			sides = c.Sides
		}
		if c.HoleMM != 0 {
			holeMM = c.HoleMM
		}
		if c.Corner != "" {
			corner = c.Corner
		}
		if c.CornerR != 0 {
			cornerR = c.CornerR
		}
		if c.Cord != "" {
			cord = c.Cord
		}
		if c.Supply != "" {
			supply = c.Supply
		}
	}

	cfg := entities.Configuration{
		WidthMM:        float64(r.Width),
		HeightMM:       float64(r.Height),
		Quantity:       int(r.Qty),
		Sides:          entities.Sides(strings.TrimSpace(sides)),
		HoleDiameterMM: float64(holeMM),
		Corner:         entities.CornerStyle(strings.TrimSpace(corner)),
		CornerRadiusMM: float64(cornerR),
		CordType:       strings.TrimSpace(cord),
		CordSupply:     entities.CordSupply(strings.TrimSpace(supply)),
		Material:       strings.TrimSpace(r.Material),
	}
	return cfg.Normalize()
}
