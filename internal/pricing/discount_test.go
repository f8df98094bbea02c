package pricing

import "testing"

func TestResolveDiscount(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		wantPercent int
		wantMinimum bool
	}{
		{"forty percent code", "ATCOST$40", 40, false},
		{"ten percent code", "TRAVIS", 10, false},
		{"lowercase resolves", "travis", 10, false},
		{"surrounding whitespace trimmed", "  tiktok  ", 10, false},
		{"minimum charge override", "F49D#GD3&", 0, true},
		{"minimum charge lowercase", "f49d#gd3&", 0, true},
		{"unknown code", "FREESTUFF", 0, false},
		{"empty code", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := ResolveDiscount(tc.code)
			if d.Percent != tc.wantPercent {
				t.Errorf("ResolveDiscount(%q).Percent = %d, want %d", tc.code, d.Percent, tc.wantPercent)
			}
			if d.MinimumCharge != tc.wantMinimum {
				t.Errorf("ResolveDiscount(%q).MinimumCharge = %v, want %v", tc.code, d.MinimumCharge, tc.wantMinimum)
			}
		})
	}
}

func TestPercentLabel(t *testing.T) {
	if got := ResolveDiscount("").PercentLabel(); got != "0" {
		t.Errorf("no discount label = %q, want \"0\"", got)
	}
	if got := ResolveDiscount("HYRUM").PercentLabel(); got != "10" {
		t.Errorf("ten percent label = %q, want \"10\"", got)
	}
	if got := ResolveDiscount("ATCOST$40").PercentLabel(); got != "40" {
		t.Errorf("forty percent label = %q, want \"40\"", got)
	}
	if got := ResolveDiscount("F49D#GD3&").PercentLabel(); got != "special" {
		t.Errorf("override label = %q, want \"special\"", got)
	}
}

func TestItemCents(t *testing.T) {
	t.Run("no discount", func(t *testing.T) {
		if got := ResolveDiscount("").ItemCents(54.71); got != 5471 {
			t.Errorf("ItemCents(54.71) = %d, want 5471", got)
		}
	})

	t.Run("ten percent per item", func(t *testing.T) {
		// 54.71 * 0.9 = 49.239 -> 4924 cents
		if got := ResolveDiscount("MASON").ItemCents(54.71); got != 4924 {
			t.Errorf("discounted ItemCents(54.71) = %d, want 4924", got)
		}
	})

	t.Run("rounding accumulates per line item", func(t *testing.T) {
		d := ResolveDiscount("MASON")
		// Two items rounded independently can differ from rounding the sum.
		perItem := d.ItemCents(10.05) + d.ItemCents(10.05)
		if perItem != 2*905 {
			t.Errorf("per-item rounding = %d, want %d", perItem, 2*905)
		}
	})
}
