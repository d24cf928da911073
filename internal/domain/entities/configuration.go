package entities

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sides is the printed-sides option of a tag configuration.

type Sides string

const (
	SidesSingle Sides = "single"
	SidesDouble Sides = "double"
)

// CornerStyle is the corner finish of a tag configuration.

type CornerStyle string

const (
	CornerRounded CornerStyle = "rounded"
	CornerSquare  CornerStyle = "square"
	CornerLuggage CornerStyle = "luggage"
)

// CordSupply says whether a cord ships loose or pre-attached.

type CordSupply string

const (
	SupplyLoose    CordSupply = "loose"
	SupplyAttached CordSupply = "attached"
)

// CordNone is the sentinel cord type that disables all cord surcharges.
const CordNone = "none"

// Coercion defaults applied by Normalize. Historical callers send partial or
// malformed payloads and expect a priced response rather than an error.
const (
	DefaultWidthMM      = 85
	DefaultHeightMM     = 55
	DefaultHoleMM       = 5
	DefaultCornerRadius = 2
	DefaultMaterial     = "standard"
)

// Configuration is the canonical custom-tag configuration.
//
// Domain notes:
//   - Value object: construct once (via Normalize), never mutate.
//   - Every price-relevant field participates in VariantTitle so two distinct
//     configurations never resolve to the same upstream variant.
//   - Material is used only for variant naming, never for pricing.

type Configuration struct {
	WidthMM        float64    `json:"width_mm"`
	HeightMM       float64    `json:"height_mm"`
	Quantity       int        `json:"quantity"`
	Sides          Sides      `json:"sides"`
	HoleDiameterMM float64    `json:"hole_diameter_mm"`
	Corner         CornerStyle `json:"corner"`
	CornerRadiusMM float64    `json:"corner_radius_mm"`
	CordType       string     `json:"cord_type"`
	CordSupply     CordSupply `json:"cord_supply"`
	Material       string     `json:"material"`
}

// Normalize returns a copy with every invalid or missing field coerced to its
// default. Unknown enum values fall back to the original client defaults
// (single / rounded / loose) instead of failing.
func (c Configuration) Normalize() Configuration {
	out := c

	if !positiveFinite(out.WidthMM) {
		out.WidthMM = DefaultWidthMM
	}
	if !positiveFinite(out.HeightMM) {
		out.HeightMM = DefaultHeightMM
	}
	if !positiveFinite(out.HoleDiameterMM) {
		out.HoleDiameterMM = DefaultHoleMM
	}
	if !positiveFinite(out.CornerRadiusMM) {
		out.CornerRadiusMM = DefaultCornerRadius
	}

	switch out.Sides {
	case SidesSingle, SidesDouble:
	default:
		out.Sides = SidesSingle
	}

	switch out.Corner {
	case CornerRounded, CornerSquare, CornerLuggage:
	default:
		out.Corner = CornerRounded
	}

	out.CordType = strings.TrimSpace(out.CordType)
	if out.CordType == "" {
		out.CordType = CordNone
	}

	switch out.CordSupply {
	case SupplyLoose, SupplyAttached:
	default:
		out.CordSupply = SupplyLoose
	}

	out.Material = strings.TrimSpace(out.Material)
	if out.Material == "" {
		out.Material = DefaultMaterial
	}

	// Quantity is deliberately NOT clamped here: the pricing floor for
	// qty < 1 is observable behavior the engine must see.

	return out
}

// VariantTitle derives the deterministic upstream lookup key.
//
// The "{w}x{h} - {material}" prefix is the legacy key older revisions used;
// the remaining segments encode every other price-relevant field so distinct
// configurations cannot collide on the same variant.
func (c Configuration) VariantTitle() string {
	var b strings.Builder

	b.WriteString(formatMM(c.WidthMM))
	b.WriteString("x")
	b.WriteString(formatMM(c.HeightMM))
	b.WriteString(" - ")
	b.WriteString(c.Material)

	b.WriteString(" - ")
	b.WriteString(string(c.Sides))

	b.WriteString(" - h")
	b.WriteString(formatMM(c.HoleDiameterMM))

	b.WriteString(" - ")
	b.WriteString(string(c.Corner))
	if c.Corner == CornerRounded {
		b.WriteString(" r")
		b.WriteString(formatMM(c.CornerRadiusMM))
	}

	if c.CordType != CordNone {
		b.WriteString(" - cord:")
		b.WriteString(c.CordType)
		b.WriteString("/")
		b.WriteString(string(c.CordSupply))
	}

	if c.Quantity > 0 {
		b.WriteString(" - q")
		b.WriteString(strconv.Itoa(c.Quantity))
	}

	return b.String()
}

// LegacyVariantTitle is the minimal key shape used by the earliest callers.
// Kept for parity checks against historical variants; new lookups always use
// VariantTitle.
func (c Configuration) LegacyVariantTitle() string {
	return fmt.Sprintf("%sx%s - %s", formatMM(c.WidthMM), formatMM(c.HeightMM), c.Material)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
