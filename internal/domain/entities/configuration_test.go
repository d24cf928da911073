package entities

import (
	"strings"
	"testing"
)

func TestConfiguration_NormalizeDefaults(t *testing.T) {
	got := Configuration{}.Normalize()

	if got.WidthMM != DefaultWidthMM || got.HeightMM != DefaultHeightMM {
		t.Fatalf("unexpected dimension defaults: %+v", got)
	}
	if got.HoleDiameterMM != DefaultHoleMM || got.CornerRadiusMM != DefaultCornerRadius {
		t.Fatalf("unexpected numeric defaults: %+v", got)
	}
	if got.Sides != SidesSingle || got.Corner != CornerRounded || got.CordSupply != SupplyLoose {
		t.Fatalf("unexpected enum defaults: %+v", got)
	}
	if got.CordType != CordNone || got.Material != DefaultMaterial {
		t.Fatalf("unexpected string defaults: %+v", got)
	}
	if got.Quantity != 0 {
		t.Fatalf("quantity must pass through unclamped, got %d", got.Quantity)
	}
}

func TestConfiguration_NormalizeRejectsUnknownEnums(t *testing.T) {
	got := Configuration{
		Sides:      "triple",
		Corner:     "bevelled",
		CordSupply: "teleported",
	}.Normalize()

	if got.Sides != SidesSingle || got.Corner != CornerRounded || got.CordSupply != SupplyLoose {
		t.Fatalf("unknown enum values must fall back to defaults: %+v", got)
	}
}

func TestConfiguration_NormalizeKeepsValidValues(t *testing.T) {
	in := Configuration{
		WidthMM:        400,
		HeightMM:       300,
		Quantity:       300,
		Sides:          SidesDouble,
		HoleDiameterMM: 8,
		Corner:         CornerLuggage,
		CornerRadiusMM: 3,
		CordType:       "standard",
		CordSupply:     SupplyAttached,
		Material:       "aluminium",
	}
	if got := in.Normalize(); got != in {
		t.Fatalf("valid configuration must survive normalization: %+v vs %+v", got, in)
	}
}

func TestConfiguration_VariantTitle(t *testing.T) {
	cfg := Configuration{
		WidthMM:  100,
		HeightMM: 50,
		Quantity: 1,
		Material: "standard",
		Sides:    SidesSingle,
		Corner:   CornerSquare,
		CordType: CordNone,
	}.Normalize()

	title := cfg.VariantTitle()
	if !strings.HasPrefix(title, "100x50 - standard") {
		t.Fatalf("title must keep the legacy prefix, got %q", title)
	}
	if cfg.LegacyVariantTitle() != "100x50 - standard" {
		t.Fatalf("unexpected legacy title: %q", cfg.LegacyVariantTitle())
	}

	// Stable across calls.
	if cfg.VariantTitle() != title {
		t.Fatalf("title not stable")
	}

	// No cord segment when cord is the sentinel.
	if strings.Contains(title, "cord:") {
		t.Fatalf("unexpected cord segment in %q", title)
	}
}

func TestConfiguration_VariantTitleEncodesPriceRelevantFields(t *testing.T) {
	base := Configuration{
		WidthMM:  100,
		HeightMM: 50,
		Quantity: 10,
		Material: "standard",
	}.Normalize()

	variants := []func(Configuration) Configuration{
		func(c Configuration) Configuration { c.WidthMM = 101; return c },
		func(c Configuration) Configuration { c.HeightMM = 51; return c },
		func(c Configuration) Configuration { c.Quantity = 11; return c },
		func(c Configuration) Configuration { c.Sides = SidesDouble; return c },
		func(c Configuration) Configuration { c.HoleDiameterMM = 8; return c },
		func(c Configuration) Configuration { c.Corner = CornerLuggage; return c },
		func(c Configuration) Configuration { c.CornerRadiusMM = 4; return c },
		func(c Configuration) Configuration { c.CordType = "standard"; return c },
		func(c Configuration) Configuration {
			c.CordType = "standard"
			c.CordSupply = SupplyAttached
			return c
		},
		func(c Configuration) Configuration { c.Material = "aluminium"; return c },
	}

	seen := map[string]bool{base.VariantTitle(): true}
	for i, mutate := range variants {
		title := mutate(base).VariantTitle()
		if seen[title] {
			t.Fatalf("mutation %d collided on title %q", i, title)
		}
		seen[title] = true
	}
}
