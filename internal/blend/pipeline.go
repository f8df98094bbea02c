package blend

import (
	"math"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
)

// Stage is one pure dosage transform. Stages never mutate their input; each
// returns a fresh ingredient list. Pipeline order is significant: later
// stages see, and can override, earlier adjustments.
type Stage struct {
	Name  string
	Apply func(Answers, []formula.Ingredient) []formula.Ingredient
}

// Pipeline is the full adjustment sequence applied to the base template.
var Pipeline = []Stage{
	{Name: "age-gender", Apply: applyAgeGender},
	{Name: "activity", Apply: applyActivity},
	{Name: "beta-alanine", Apply: applyBetaAlanine},
	{Name: "caffeine", Apply: applyCaffeine},
	{Name: "bodyweight", Apply: applyBodyweight},
	{Name: "rounding", Apply: applyRounding},
}

// Adjust runs the base template through every pipeline stage for the given
// raw answer array. A malformed answer array is a no-op: the base template
// comes back unadjusted.
func Adjust(rawAnswers []string) []formula.Ingredient {
	ingredients := formula.BaseTemplate()
	answers, ok := ParseAnswers(rawAnswers)
	if !ok {
		return ingredients
	}
	return AdjustWith(answers, ingredients)
}

// AdjustWith applies the pipeline to an explicit template.
func AdjustWith(answers Answers, ingredients []formula.Ingredient) []formula.Ingredient {
	for _, stage := range Pipeline {
		ingredients = stage.Apply(answers, ingredients)
	}
	return ingredients
}

func applyAgeGender(a Answers, ings []formula.Ingredient) []formula.Ingredient {
	multiplier := 1.0
	switch a.AgeBand {
	case "18–25":
		multiplier *= 1.1
	case "46–60":
		multiplier *= 0.8
	case "Over 60":
		multiplier *= 0.6
	}
	switch a.Gender {
	case "Male", "Female":
		multiplier *= 1.2
	}
	return scaleAll(ings, multiplier)
}

func applyActivity(a Answers, ings []formula.Ingredient) []formula.Ingredient {
	switch a.Activity {
	case ActivityEndurance:
		ings = zeroIngredient(ings, "L-Citrulline Malate")
	case ActivityPower:
		ings = scaleCategory(ings, formula.CategoryElectrolytes, 0.2)
		ings = scaleCategory(ings, formula.CategoryNootropics, 1.2)
	case ActivityHybrid:
		ings = scaleCategory(ings, formula.CategoryElectrolytes, 0.4)
	case ActivityBodybuilding:
		ings = scaleCategory(ings, formula.CategoryElectrolytes, 0.2)
		ings = scaleIngredient(ings, "L-Citrulline Malate", 1.5)
		ings = scaleIngredient(ings, "Beta-Alanine", 1.2)
	case ActivityGymBro:
		ings = scaleIngredient(ings, "L-Citrulline Malate", 1.5)
		ings = scaleIngredient(ings, "Beta-Alanine", 1.2)
		ings = scaleIngredient(ings, "Caffeine Anhydrous", 1.2)
	case ActivityPowerlifting:
		// The electrolyte cut applies twice for powerlifters: once from the
		// shared strength-sport rule and once from the powerlifting rule.
		ings = scaleCategory(ings, formula.CategoryElectrolytes, 0.2)
		ings = scaleCategory(ings, formula.CategoryNootropics, 1.5)
		ings = scaleCategory(ings, formula.CategoryElectrolytes, 0.2)
	}
	return ings
}

func applyBetaAlanine(a Answers, ings []formula.Ingredient) []formula.Ingredient {
	switch a.BetaAlanine {
	case BetaMore:
		return scaleIngredient(ings, "Beta-Alanine", 1.5)
	case BetaOK:
		return scaleIngredient(ings, "Beta-Alanine", 0.5)
	case BetaDislike:
		return zeroIngredient(ings, "Beta-Alanine")
	}
	return ings
}

func applyCaffeine(a Answers, ings []formula.Ingredient) []formula.Ingredient {
	switch a.Caffeine {
	case CaffeineVeryHigh:
		return scaleIngredient(ings, "Caffeine Anhydrous", 1.5)
	case CaffeineModerate:
		return scaleIngredient(ings, "Caffeine Anhydrous", 0.75)
	case CaffeineLow:
		return scaleIngredient(ings, "Caffeine Anhydrous", 0.5)
	case CaffeineStimFree:
		ings = zeroIngredient(ings, "Caffeine Anhydrous")
		return zeroIngredient(ings, "Theobromine")
	}
	return ings
}

// BodyweightMultiplier maps a bodyweight in lbs onto the dosage step
// function. Zero (absent/unparseable) means no adjustment.
func BodyweightMultiplier(lbs int) float64 {
	switch {
	case lbs <= 0:
		return 1
	case lbs < 100:
		return 0.5
	case lbs <= 120:
		return 0.6
	case lbs <= 140:
		return 0.8
	case lbs <= 160:
		return 1
	case lbs <= 180:
		return 1.1
	case lbs <= 200:
		return 1.2
	default:
		return 1.25
	}
}

func applyBodyweight(a Answers, ings []formula.Ingredient) []formula.Ingredient {
	return scaleAll(ings, BodyweightMultiplier(a.Bodyweight))
}

// Core actives round to the nearest 100 mg, everything else to the nearest
// 10 mg. Vitamins keep their exact amounts.
var coarseRounded = map[string]bool{
	"Creatine Monohydrate": true,
	"Beta-Alanine":         true,
	"L-Citrulline Malate":  true,
}

func applyRounding(_ Answers, ings []formula.Ingredient) []formula.Ingredient {
	out := make([]formula.Ingredient, len(ings))
	for i, ing := range ings {
		if ing.Name == formula.CategoryVitamins {
			out[i] = ing
			continue
		}
		if coarseRounded[ing.Name] {
			ing.Amount = roundToStep(ing.Amount, 100)
			out[i] = ing
			continue
		}
		if ing.IsCategory() {
			subs := make([]formula.Ingredient, len(ing.SubIngredients))
			for j, sub := range ing.SubIngredients {
				sub.Amount = roundToStep(sub.Amount, 10)
				subs[j] = sub
			}
			ing.SubIngredients = subs
			out[i] = ing
			continue
		}
		ing.Amount = roundToStep(ing.Amount, 10)
		out[i] = ing
	}
	return out
}

// --- shared transform helpers ---

func scaleAll(ings []formula.Ingredient, multiplier float64) []formula.Ingredient {
	if multiplier == 1 {
		return ings
	}
	out := make([]formula.Ingredient, len(ings))
	for i, ing := range ings {
		if ing.IsCategory() {
			subs := make([]formula.Ingredient, len(ing.SubIngredients))
			for j, sub := range ing.SubIngredients {
				sub.Amount = math.Round(sub.Amount * multiplier)
				subs[j] = sub
			}
			ing.SubIngredients = subs
		} else {
			ing.Amount = math.Round(ing.Amount * multiplier)
		}
		out[i] = ing
	}
	return out
}

func scaleIngredient(ings []formula.Ingredient, name string, multiplier float64) []formula.Ingredient {
	out := make([]formula.Ingredient, len(ings))
	for i, ing := range ings {
		if ing.Name == name {
			ing.Amount = math.Round(ing.Amount * multiplier)
		}
		out[i] = ing
	}
	return out
}

func zeroIngredient(ings []formula.Ingredient, name string) []formula.Ingredient {
	out := make([]formula.Ingredient, len(ings))
	for i, ing := range ings {
		if ing.Name == name {
			ing.Amount = 0
		}
		out[i] = ing
	}
	return out
}

func scaleCategory(ings []formula.Ingredient, category string, multiplier float64) []formula.Ingredient {
	out := make([]formula.Ingredient, len(ings))
	for i, ing := range ings {
		if ing.Name == category && ing.IsCategory() {
			subs := make([]formula.Ingredient, len(ing.SubIngredients))
			for j, sub := range ing.SubIngredients {
				sub.Amount = math.Round(sub.Amount * multiplier)
				subs[j] = sub
			}
			ing.SubIngredients = subs
		}
		out[i] = ing
	}
	return out
}

func roundToStep(v, step float64) float64 {
	return math.Round(v/step) * step
}
