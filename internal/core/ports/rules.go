package ports

import "github.com/ShekharNarayanan/conda-portable/internal/core/domain"

// RuleSource defines the interface for loading the platform-locked package
// rule table.
//
//go:generate mockgen -source=rules.go -destination=mocks/mock_rules.go -package=mocks
type RuleSource interface {
	// Load returns the rule table, merging any user override into the
	// built-in defaults.
	Load() (domain.RuleTable, error)
}
