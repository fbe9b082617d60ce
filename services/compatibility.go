package services

import (
	"log"

	"github.com/RBazelais/BoltBucket/catalog"
)

// Configuration is a proposed build: the model name plus one Selection per
// category.
type Configuration struct {
	Model      string
	Selections map[string]Selection
}

// Checker evaluates configurations against an ordered incompatibility rule
// table. The rules are fixed at construction; a Checker is safe for
// concurrent use.
type Checker struct {
	rules []catalog.Rule
}

func NewChecker(rules []catalog.Rule) *Checker {
	return &Checker{rules: rules}
}

// IsCompatible reports whether the configuration violates any rule. The check
// fails closed: if rule evaluation panics for any reason the configuration is
// treated as incompatible and the panic is logged, never propagated.
func (c *Checker) IsCompatible(cfg Configuration) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[compat] rule evaluation failed: %v", r)
			ok = false
		}
	}()

	for _, rule := range c.rules {
		sel := cfg.Selections[rule.IfHasCategory]
		if !sel.MatchesID(rule.IfHasOptionID) {
			continue
		}
		// Only the pseudo-category "model" is compared today.
		if rule.CannotHaveCategory == "model" && cfg.Model == rule.CannotHaveValue {
			return false
		}
	}
	return true
}
