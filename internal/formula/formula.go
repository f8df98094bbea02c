package formula

// Ingredient is either a dosed leaf (Amount + Unit set) or a named category
// grouping sub-ingredients. Nesting never goes deeper than one level.
type Ingredient struct {
	Name           string       `json:"name"`
	Amount         float64      `json:"amount,omitempty"`
	Unit           string       `json:"unit,omitempty"`
	SubIngredients []Ingredient `json:"subIngredients,omitempty"`
}

// CartItem is one purchasable blend. The cart itself lives in the browser's
// local storage; the server only ever sees it as request payload.
type CartItem struct {
	Ingredients []Ingredient `json:"ingredients"`
	Cost        float64      `json:"cost"`
	Flavor      string       `json:"flavor,omitempty"`
}

// SupplementFacts is the structured label data sent to manufacturing.
type SupplementFacts struct {
	ServingSize          string                  `json:"servingSize"`
	ServingsPerContainer int                     `json:"servingsPerContainer"`
	Flavor               string                  `json:"flavor"`
	Categories           map[string][]Ingredient `json:"categories"`
}

// Category names as they appear on the label and in the facts payload.
const (
	CategoryMain         = "Amount Per Serving"
	CategoryElectrolytes = "Electrolytes"
	CategoryNootropics   = "Nootropics"
	CategoryVitamins     = "Vitamins & Minerals"
)

// IsCategory reports whether the ingredient is a category grouping rather
// than a dosed leaf.
func (i Ingredient) IsCategory() bool {
	return len(i.SubIngredients) > 0
}

// FactsFromCart flattens every cart item into the categorized supplement
// facts structure. The flavor of the first item labels the whole order.
func FactsFromCart(items []CartItem) SupplementFacts {
	facts := SupplementFacts{
		ServingSize:          "1 Scoop",
		ServingsPerContainer: 30,
		Flavor:               "Unspecified",
		Categories: map[string][]Ingredient{
			CategoryMain:         {},
			CategoryElectrolytes: {},
			CategoryNootropics:   {},
			CategoryVitamins:     {},
		},
	}
	if len(items) > 0 && items[0].Flavor != "" {
		facts.Flavor = items[0].Flavor
	}

	for _, item := range items {
		for _, ing := range item.Ingredients {
			switch {
			case !ing.IsCategory():
				facts.Categories[CategoryMain] = append(facts.Categories[CategoryMain], ing)
			case ing.Name == CategoryElectrolytes:
				facts.Categories[CategoryElectrolytes] = append(facts.Categories[CategoryElectrolytes], ing.SubIngredients...)
			case ing.Name == CategoryNootropics:
				facts.Categories[CategoryNootropics] = append(facts.Categories[CategoryNootropics], ing.SubIngredients...)
			case ing.Name == CategoryVitamins:
				facts.Categories[CategoryVitamins] = append(facts.Categories[CategoryVitamins], ing.SubIngredients...)
			}
		}
	}
	return facts
}

// BaseTemplate is the quiz baseline before any dosage adjustment.
func BaseTemplate() []Ingredient {
	return []Ingredient{
		{Name: "Creatine Monohydrate", Amount: 4000, Unit: "mg"},
		{Name: "Beta-Alanine", Amount: 3200, Unit: "mg"},
		{Name: "Caffeine Anhydrous", Amount: 200, Unit: "mg"},
		{Name: "L-Citrulline Malate", Amount: 3000, Unit: "mg"},
		{Name: "Theobromine", Amount: 200, Unit: "mg"},
		{Name: "Betaine Anhydrous", Amount: 500, Unit: "mg"},
		{
			Name: CategoryElectrolytes,
			SubIngredients: []Ingredient{
				{Name: "Sodium Chloride", Amount: 800, Unit: "mg"},
				{Name: "Magnesium Malate", Amount: 60, Unit: "mg"},
				{Name: "Potassium Chloride", Amount: 200, Unit: "mg"},
				{Name: "Calcium Citrate", Amount: 75, Unit: "mg"},
			},
		},
		{
			Name: CategoryNootropics,
			SubIngredients: []Ingredient{
				{Name: "L-Tyrosine", Amount: 500, Unit: "mg"},
				{Name: "L-Theanine", Amount: 100, Unit: "mg"},
				{Name: "Alpha-GPC", Amount: 400, Unit: "mg"},
				{Name: "Taurine", Amount: 500, Unit: "mg"},
			},
		},
		{
			Name: CategoryVitamins,
			SubIngredients: []Ingredient{
				{Name: "B6", Amount: 10, Unit: "mg"},
				{Name: "B12", Amount: 500, Unit: "mcg"},
				{Name: "B5", Amount: 10, Unit: "mg"},
				{Name: "B2", Amount: 2, Unit: "mg"},
			},
		},
	}
}

// ScratchTemplate is the default shown on the start-from-scratch builder.
func ScratchTemplate() []Ingredient {
	return []Ingredient{
		{Name: "Creatine Monohydrate", Amount: 5280, Unit: "mg"},
		{Name: "Beta-Alanine", Amount: 4224, Unit: "mg"},
		{Name: "Caffeine Anhydrous", Amount: 264, Unit: "mg"},
		{Name: "L-Citrulline Malate", Amount: 3960, Unit: "mg"},
		{Name: "Theobromine", Amount: 264, Unit: "mg"},
		{Name: "Betaine Anhydrous", Amount: 660, Unit: "mg"},
		{
			Name: CategoryElectrolytes,
			SubIngredients: []Ingredient{
				{Name: "Sodium Chloride", Amount: 211, Unit: "mg"},
				{Name: "Magnesium Malate", Amount: 16, Unit: "mg"},
				{Name: "Potassium Chloride", Amount: 53, Unit: "mg"},
				{Name: "Calcium Citrate", Amount: 20, Unit: "mg"},
			},
		},
		{
			Name: CategoryNootropics,
			SubIngredients: []Ingredient{
				{Name: "L-Tyrosine", Amount: 330, Unit: "mg"},
				{Name: "L-Theanine", Amount: 66, Unit: "mg"},
				{Name: "Alpha-GPC", Amount: 264, Unit: "mg"},
				{Name: "Taurine", Amount: 330, Unit: "mg"},
			},
		},
		{
			Name: CategoryVitamins,
			SubIngredients: []Ingredient{
				{Name: "B6", Amount: 13, Unit: "mg"},
				{Name: "B12", Amount: 660, Unit: "mcg"},
				{Name: "B5", Amount: 13, Unit: "mg"},
				{Name: "B2", Amount: 3, Unit: "mg"},
			},
		},
	}
}

// Flavors available for any blend.
var Flavors = []string{"Blue Raz", "Fruit Punch Slam", "Lemon Lime Twist", "Pina Colada", "Blood Orange"}
