package formula

import (
	"encoding/json"
	"strconv"
)

// Short ingredient names used when a formula has to squeeze into the payment
// processor's metadata size limit.
var abbreviations = map[string]string{
	"Creatine Monohydrate": "Creatine",
	"Beta-Alanine":         "Beta-Ala",
	"Caffeine Anhydrous":   "Caffeine",
	"L-Citrulline Malate":  "Citrulline",
	"Theobromine":          "Theo",
	"Betaine Anhydrous":    "Betaine",
	"Sodium Chloride":      "NaCl",
	"Magnesium Malate":     "Mg-Malate",
	"Potassium Chloride":   "KCl",
	"Calcium Citrate":      "Ca-Citrate",
	"L-Tyrosine":           "Tyrosine",
	"L-Theanine":           "Theanine",
	"Alpha-GPC":            "A-GPC",
}

var fullNames = func() map[string]string {
	m := make(map[string]string, len(abbreviations))
	for full, short := range abbreviations {
		m[short] = full
	}
	return m
}()

// Abbreviate returns the compact name for an ingredient, or the name itself
// when no abbreviation exists.
func Abbreviate(name string) string {
	if short, ok := abbreviations[name]; ok {
		return short
	}
	return name
}

// FullName reverses Abbreviate for the manufacturing email.
func FullName(abbrev string) string {
	if full, ok := fullNames[abbrev]; ok {
		return full
	}
	return abbrev
}

// CompactFactsJSON serializes the facts with abbreviated ingredient names
// and bare amounts, the smallest rendition that still identifies every
// dosage. Used for processor metadata, which caps each value's length.
func CompactFactsJSON(facts SupplementFacts) string {
	compact := make(map[string]map[string]string, len(facts.Categories))
	for category, ingredients := range facts.Categories {
		if len(ingredients) == 0 {
			continue
		}
		entries := make(map[string]string, len(ingredients))
		for _, ing := range ingredients {
			entries[Abbreviate(ing.Name)] = strconv.FormatFloat(ing.Amount, 'f', -1, 64) + ing.Unit
			for _, sub := range ing.SubIngredients {
				entries[Abbreviate(sub.Name)] = strconv.FormatFloat(sub.Amount, 'f', -1, 64) + sub.Unit
			}
		}
		compact[category] = entries
	}
	data, err := json.Marshal(compact)
	if err != nil {
		return ""
	}
	return string(data)
}
