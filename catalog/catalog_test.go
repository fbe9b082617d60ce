package catalog

import "testing"

func TestDefaultCatalogHasAllCategories(t *testing.T) {
	cat := Default()

	want := []string{CategoryExterior, CategoryRoof, CategoryWheels, CategoryInterior}
	got := cat.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Consumers assume every category offers at least one default option.
	for _, category := range want {
		if len(cat.ListOptions(category)) == 0 {
			t.Errorf("category %q has no options", category)
		}
	}
}

func TestFindOption(t *testing.T) {
	cat := Default()

	tests := []struct {
		category string
		id       string
		found    bool
		label    string
	}{
		{CategoryExterior, "exterior9", true, "Accelerate Yellow"},
		{CategoryRoof, "roof5", true, "Transparent Roof"},
		{CategoryInterior, "interior2", true, "Jet Black"},
		{CategoryRoof, "exterior9", false, ""}, // right id, wrong category
		{CategoryWheels, "nope", false, ""},
		{"unknown-category", "wheel1", false, ""},
	}

	for _, tt := range tests {
		opt, ok := cat.FindOption(tt.category, tt.id)
		if ok != tt.found {
			t.Errorf("FindOption(%q, %q) found = %v, want %v", tt.category, tt.id, ok, tt.found)
			continue
		}
		if ok && opt.Label != tt.label {
			t.Errorf("FindOption(%q, %q) label = %q, want %q", tt.category, tt.id, opt.Label, tt.label)
		}
	}
}

func TestListOptionsUnknownCategory(t *testing.T) {
	if opts := Default().ListOptions("spoilers"); opts != nil {
		t.Errorf("ListOptions on unknown category = %v, want nil", opts)
	}
}

func TestDefaultRulesSeedRule(t *testing.T) {
	rules := DefaultRules()
	if len(rules) == 0 {
		t.Fatal("expected at least one seeded rule")
	}

	rule := rules[0]
	if rule.IfHasCategory != CategoryRoof || rule.IfHasOptionID != "transparent_roof" {
		t.Errorf("unexpected trigger: %+v", rule)
	}
	if rule.CannotHaveCategory != "model" || rule.CannotHaveValue != "Convertible" {
		t.Errorf("unexpected restriction: %+v", rule)
	}
}

func TestOptionPricesNonNegative(t *testing.T) {
	cat := Default()
	for _, category := range cat.Categories() {
		for _, opt := range cat.ListOptions(category) {
			if opt.Price < 0 {
				t.Errorf("option %s/%s has negative price %v", category, opt.ID, opt.Price)
			}
		}
	}
}
