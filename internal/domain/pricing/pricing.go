package pricing

import (
	"math"

	"tagshop_variants/internal/domain/entities"
)

// Pricing for custom tags. Must stay in lockstep with the storefront's
// client-side price(c) function: same formula, same floor, same rounding.

const (
	// FloorPrice is the minimum order total in GBP.
	FloorPrice = 8.50

	baseRatePerCm2    = 0.012
	doubleSidedFactor = 1.12
	largeHoleMM       = 7
	largeHoleAdd      = 0.002
	roundedRadiusRate = 0.0007
	luggageCornerAdd  = 0.01
	cordAdd           = 0.02
	attachedSupplyAdd = 0.01
)

// Breakdown is the per-component decomposition of a quote. It exists for
// server-side parity logging against the storefront calculator.

type Breakdown struct {
	AreaCm2        float64 `json:"area_cm2"`
	BaseUnit       float64 `json:"base_unit"`
	SidesFactor    float64 `json:"sides_factor"`
	HoleAdd        float64 `json:"hole_add"`
	RoundedAdd     float64 `json:"rounded_add"`
	LuggageAdd     float64 `json:"luggage_add"`
	CordAdd        float64 `json:"cord_add"`
	AttachedAdd    float64 `json:"attached_add"`
	UnitPrice      float64 `json:"unit_price"`
	DiscountFactor float64 `json:"discount_factor"`
	BeforeFloor    float64 `json:"total_before_floor"`
	Total          float64 `json:"total"`
}

// Price returns the order total for a configuration: deterministic, pure,
// and never below FloorPrice.
func Price(cfg entities.Configuration) float64 {
	return Quote(cfg).Total
}

// Quote computes the full breakdown for a configuration.
//
// A quantity below 1 (including the absent-quantity zero value) short-circuits
// to the bare floor without evaluating the rest of the formula.
func Quote(cfg entities.Configuration) Breakdown {
	if cfg.Quantity < 1 {
		return Breakdown{DiscountFactor: 1, Total: FloorPrice}
	}

	b := Breakdown{SidesFactor: 1, DiscountFactor: 1}

	b.AreaCm2 = cfg.WidthMM * cfg.HeightMM / 100
	b.BaseUnit = baseRatePerCm2 * b.AreaCm2

	unit := b.BaseUnit
	if cfg.Sides == entities.SidesDouble {
		b.SidesFactor = doubleSidedFactor
		unit *= doubleSidedFactor
	}

	if cfg.HoleDiameterMM >= largeHoleMM {
		b.HoleAdd = largeHoleAdd
		unit += largeHoleAdd
	}

	switch cfg.Corner {
	case entities.CornerRounded:
		b.RoundedAdd = cfg.CornerRadiusMM * roundedRadiusRate
		unit += b.RoundedAdd
	case entities.CornerLuggage:
		b.LuggageAdd = luggageCornerAdd
		unit += luggageCornerAdd
	}

	if cfg.CordType != "" && cfg.CordType != entities.CordNone {
		b.CordAdd = cordAdd
		unit += cordAdd
		if cfg.CordSupply == entities.SupplyAttached {
			b.AttachedAdd = attachedSupplyAdd
			unit += attachedSupplyAdd
		}
	}
	b.UnitPrice = unit

	// Highest qualifying tier wins.
	switch {
	case cfg.Quantity >= 1000:
		b.DiscountFactor = 0.83
	case cfg.Quantity >= 500:
		b.DiscountFactor = 0.88
	case cfg.Quantity >= 250:
		b.DiscountFactor = 0.93
	}

	b.BeforeFloor = unit * float64(cfg.Quantity) * b.DiscountFactor
	b.Total = round2(math.Max(b.BeforeFloor, FloorPrice))
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
