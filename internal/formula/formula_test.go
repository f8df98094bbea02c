package formula

import (
	"strings"
	"testing"
)

func TestFactsFromCart(t *testing.T) {
	items := []CartItem{
		{
			Flavor: "Blue Raz",
			Cost:   54.71,
			Ingredients: []Ingredient{
				{Name: "Creatine Monohydrate", Amount: 5000, Unit: "mg"},
				{
					Name: CategoryElectrolytes,
					SubIngredients: []Ingredient{
						{Name: "Sodium Chloride", Amount: 800, Unit: "mg"},
					},
				},
				{
					Name: CategoryVitamins,
					SubIngredients: []Ingredient{
						{Name: "B12", Amount: 500, Unit: "mcg"},
					},
				},
			},
		},
	}

	facts := FactsFromCart(items)

	if facts.Flavor != "Blue Raz" {
		t.Errorf("Flavor = %q, want Blue Raz", facts.Flavor)
	}
	if facts.ServingSize != "1 Scoop" || facts.ServingsPerContainer != 30 {
		t.Errorf("serving info = %q / %d", facts.ServingSize, facts.ServingsPerContainer)
	}
	if got := facts.Categories[CategoryMain]; len(got) != 1 || got[0].Name != "Creatine Monohydrate" {
		t.Errorf("main category = %+v", got)
	}
	if got := facts.Categories[CategoryElectrolytes]; len(got) != 1 || got[0].Name != "Sodium Chloride" {
		t.Errorf("electrolytes = %+v", got)
	}
	if got := facts.Categories[CategoryVitamins]; len(got) != 1 || got[0].Name != "B12" {
		t.Errorf("vitamins = %+v", got)
	}
}

func TestFactsFromCartDefaultFlavor(t *testing.T) {
	facts := FactsFromCart([]CartItem{{Ingredients: []Ingredient{{Name: "Taurine", Amount: 500, Unit: "mg"}}}})
	if facts.Flavor != "Unspecified" {
		t.Errorf("Flavor = %q, want Unspecified", facts.Flavor)
	}
}

func TestFactsURLRoundTrip(t *testing.T) {
	facts := FactsFromCart([]CartItem{
		{
			Flavor: "Pina Colada",
			Ingredients: []Ingredient{
				{Name: "Beta-Alanine", Amount: 3200, Unit: "mg"},
			},
		},
	})

	base := "https://example.com/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	withFacts := AppendFactsToURL(base, facts)
	if !strings.Contains(withFacts, FactsParam+"=") {
		t.Fatalf("facts parameter missing from %q", withFacts)
	}

	got := FactsFromURL(withFacts)
	if got == nil {
		t.Fatal("FactsFromURL returned nil for a URL it built")
	}
	if got.Flavor != "Pina Colada" {
		t.Errorf("round-tripped flavor = %q", got.Flavor)
	}
	main := got.Categories[CategoryMain]
	if len(main) != 1 || main[0].Name != "Beta-Alanine" || main[0].Amount != 3200 || main[0].Unit != "mg" {
		t.Errorf("round-tripped main category = %+v", main)
	}
}

func TestAppendFactsToURLSeparator(t *testing.T) {
	facts := SupplementFacts{Categories: map[string][]Ingredient{}}
	if got := AppendFactsToURL("https://example.com/success", facts); !strings.Contains(got, "?"+FactsParam+"=") {
		t.Errorf("expected ? separator on a bare URL, got %q", got)
	}
	if got := AppendFactsToURL("https://example.com/success?a=b", facts); !strings.Contains(got, "&"+FactsParam+"=") {
		t.Errorf("expected & separator when a query exists, got %q", got)
	}
}

func TestFactsFromURLMissingOrMalformed(t *testing.T) {
	if got := FactsFromURL("https://example.com/success?session_id=cs_123"); got != nil {
		t.Errorf("expected nil for a URL without facts, got %+v", got)
	}
	if got := FactsFromURL("https://example.com/success?" + FactsParam + "=not-json"); got != nil {
		t.Errorf("expected nil for malformed facts, got %+v", got)
	}
	if got := FactsFromURL("://not a url"); got != nil {
		t.Errorf("expected nil for an unparseable URL, got %+v", got)
	}
}

func TestAbbreviations(t *testing.T) {
	if got := Abbreviate("Creatine Monohydrate"); got != "Creatine" {
		t.Errorf("Abbreviate = %q", got)
	}
	if got := Abbreviate("Taurine"); got != "Taurine" {
		t.Errorf("unmapped name should pass through, got %q", got)
	}
	if got := FullName("Creatine"); got != "Creatine Monohydrate" {
		t.Errorf("FullName = %q", got)
	}
}

func TestCompactFactsJSON(t *testing.T) {
	facts := FactsFromCart([]CartItem{
		{
			Ingredients: []Ingredient{
				{Name: "Creatine Monohydrate", Amount: 5000, Unit: "mg"},
				{
					Name: CategoryElectrolytes,
					SubIngredients: []Ingredient{
						{Name: "Sodium Chloride", Amount: 800, Unit: "mg"},
					},
				},
			},
		},
	})

	compact := CompactFactsJSON(facts)
	if compact == "" {
		t.Fatal("CompactFactsJSON returned empty")
	}
	if !strings.Contains(compact, `"Creatine":"5000mg"`) {
		t.Errorf("abbreviated creatine entry missing from %s", compact)
	}
	if !strings.Contains(compact, `"NaCl":"800mg"`) {
		t.Errorf("abbreviated sodium entry missing from %s", compact)
	}
	if strings.Contains(compact, "Monohydrate") {
		t.Errorf("full names should not appear in compact facts: %s", compact)
	}
}
