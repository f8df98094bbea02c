package pricing

import (
	"math"
	"testing"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIngredientCost(t *testing.T) {
	t.Run("linear in amount", func(t *testing.T) {
		one := IngredientCost("Creatine Monohydrate", 1000, "mg")
		five := IngredientCost("Creatine Monohydrate", 5000, "mg")
		if !almostEqual(five, 5*one) {
			t.Errorf("expected 5x cost for 5x amount, got %v vs %v", five, 5*one)
		}
	})

	t.Run("monotonically increasing", func(t *testing.T) {
		prev := 0.0
		for _, amount := range []float64{100, 500, 1000, 2500, 5000} {
			cost := IngredientCost("Beta-Alanine", amount, "mg")
			if cost <= prev {
				t.Fatalf("cost not increasing at amount %v: %v <= %v", amount, cost, prev)
			}
			prev = cost
		}
	})

	t.Run("unknown ingredient prices at zero", func(t *testing.T) {
		if got := IngredientCost("Unicorn Dust", 9999, "mg"); got != 0 {
			t.Errorf("expected 0 for unknown ingredient, got %v", got)
		}
	})

	t.Run("non-positive amount prices at zero", func(t *testing.T) {
		if got := IngredientCost("Creatine Monohydrate", 0, "mg"); got != 0 {
			t.Errorf("expected 0 for zero amount, got %v", got)
		}
		if got := IngredientCost("Creatine Monohydrate", -50, "mg"); got != 0 {
			t.Errorf("expected 0 for negative amount, got %v", got)
		}
	})

	t.Run("unit conversion", func(t *testing.T) {
		mg := IngredientCost("B12", 1, "mg")
		mcg := IngredientCost("B12", 1000, "mcg")
		if !almostEqual(mg, mcg) {
			t.Errorf("1000 mcg should cost the same as 1 mg: %v vs %v", mcg, mg)
		}

		g := IngredientCost("Creatine Monohydrate", 1, "g")
		asMg := IngredientCost("Creatine Monohydrate", 1000, "mg")
		if !almostEqual(g, asMg) {
			t.Errorf("1 g should cost the same as 1000 mg: %v vs %v", g, asMg)
		}
	})
}

func TestTotalIngredientCost(t *testing.T) {
	ingredients := []formula.Ingredient{
		{Name: "Creatine Monohydrate", Amount: 4000, Unit: "mg"},
		{
			Name: formula.CategoryElectrolytes,
			SubIngredients: []formula.Ingredient{
				{Name: "Sodium Chloride", Amount: 800, Unit: "mg"},
				{Name: "Potassium Chloride", Amount: 200, Unit: "mg"},
			},
		},
	}

	want := IngredientCost("Creatine Monohydrate", 4000, "mg") +
		IngredientCost("Sodium Chloride", 800, "mg") +
		IngredientCost("Potassium Chloride", 200, "mg")
	if got := TotalIngredientCost(ingredients); !almostEqual(got, want) {
		t.Errorf("TotalIngredientCost = %v, want %v", got, want)
	}
}

func TestCostBreakdown(t *testing.T) {
	ingredients := formula.BaseTemplate()
	b := CostBreakdown(ingredients)

	ingredientCost := TotalIngredientCost(ingredients)
	wantTotal := math.Round((ingredientCost+CustomManufacturing+QualityTesting+PackagingShipping)*100) / 100
	if b.Total != wantTotal {
		t.Errorf("breakdown total = %v, want %v", b.Total, wantTotal)
	}
	if b.CustomManufacturing != CustomManufacturing || b.QualityTesting != QualityTesting || b.PackagingShipping != PackagingShipping {
		t.Errorf("flat fees altered in breakdown: %+v", b)
	}

	if got := FinalPrice(ingredients); !almostEqual(got, ingredientCost+CustomManufacturing+QualityTesting+PackagingShipping) {
		t.Errorf("FinalPrice = %v", got)
	}
}
