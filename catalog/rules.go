package catalog

// Rule describes one incompatibility: when the configuration's selection for
// IfHasCategory matches IfHasOptionID, its value for CannotHaveCategory must
// not equal CannotHaveValue. CannotHaveCategory currently only targets the
// pseudo-category "model", which is compared against a literal string.
type Rule struct {
	IfHasCategory      string
	IfHasOptionID      string
	CannotHaveCategory string
	CannotHaveValue    string
}

// DefaultRules returns the incompatibility rule table. A transparent roof
// makes no sense on a convertible, so that pairing is rejected.
func DefaultRules() []Rule {
	return []Rule{
		{
			IfHasCategory:      CategoryRoof,
			IfHasOptionID:      "transparent_roof",
			CannotHaveCategory: "model",
			CannotHaveValue:    "Convertible",
		},
	}
}
