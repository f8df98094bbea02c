package pricing

import (
	"math"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
)

// Per-mg ingredient rates: raw cost x 30 servings per bottle x 2 margin.
var ingredientRates = map[string]float64{
	"Creatine Monohydrate": 0.0014382,
	"Beta-Alanine":         0.0013782,
	"Caffeine Anhydrous":   0.0011568,
	"L-Citrulline Malate":  0.0014982,
	"Theobromine":          0.0013182,
	"Betaine Anhydrous":    0.0014982,

	"Sodium Chloride":    0.0011430,
	"Magnesium Malate":   0.0015582,
	"Potassium Chloride": 0.0024582,
	"Calcium Citrate":    0.0014982,

	"L-Tyrosine": 0.0021582,
	"L-Theanine": 0.0028782,
	"Alpha-GPC":  0.0011982,
	"Taurine":    0.0015582,

	"B6":  0.0029658,
	"B12": 0.0045738,
	"B5":  0.0011490,
	"B2":  0.0057564,
}

// Flat per-bottle costs independent of the ingredient list.
const (
	CustomManufacturing = 14.97
	QualityTesting      = 3.25
	PackagingShipping   = 10.49
)

// Breakdown itemizes the displayed price. Each component is rounded to two
// decimals on its own, so Total can differ from the sum of the displayed
// parts by up to a cent.
type Breakdown struct {
	IngredientCost      float64 `json:"ingredientCost"`
	CustomManufacturing float64 `json:"customManufacturing"`
	QualityTesting      float64 `json:"qualityTesting"`
	PackagingShipping   float64 `json:"packagingShipping"`
	Total               float64 `json:"total"`
}

// IngredientCost prices a single dosed ingredient. Amounts are normalized to
// mg (mcg/1000, g*1000). An unrecognized name prices at zero, as does a
// non-positive amount.
func IngredientCost(name string, amount float64, unit string) float64 {
	if amount <= 0 {
		return 0
	}
	mg := amount
	switch unit {
	case "mcg":
		mg = amount / 1000
	case "g":
		mg = amount * 1000
	}
	return mg * ingredientRates[name]
}

// TotalIngredientCost sums leaves and one level of sub-ingredients.
func TotalIngredientCost(ingredients []formula.Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		if ing.Amount != 0 && ing.Unit != "" {
			total += IngredientCost(ing.Name, ing.Amount, ing.Unit)
		}
		for _, sub := range ing.SubIngredients {
			if sub.Amount != 0 && sub.Unit != "" {
				total += IngredientCost(sub.Name, sub.Amount, sub.Unit)
			}
		}
	}
	return total
}

// FinalPrice is the ingredient cost plus the three flat fees.
func FinalPrice(ingredients []formula.Ingredient) float64 {
	return TotalIngredientCost(ingredients) + CustomManufacturing + QualityTesting + PackagingShipping
}

// CostBreakdown returns the display breakdown for a formula.
func CostBreakdown(ingredients []formula.Ingredient) Breakdown {
	ingredientCost := TotalIngredientCost(ingredients)
	return Breakdown{
		IngredientCost:      round2(ingredientCost),
		CustomManufacturing: CustomManufacturing,
		QualityTesting:      QualityTesting,
		PackagingShipping:   PackagingShipping,
		Total:               round2(ingredientCost + CustomManufacturing + QualityTesting + PackagingShipping),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
