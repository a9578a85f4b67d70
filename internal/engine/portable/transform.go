// Package portable turns a platform-exported environment document into a
// platform-neutral one.
//
// Three rewrites happen in one pass over the dependency list: conda specs
// locked to the origin platform are dropped, pip requirements known to be
// platform-locked get a platform_system marker, and the MKL stack is
// swapped for OpenBLAS. Entries the rules never name pass through in their
// original order.
package portable

import (
	"strings"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
)

// blasDropSet is the MKL family. These packages resolve on a subset of
// platforms only, so they are dropped for every origin and the document is
// pinned to OpenBLAS instead.
var blasDropSet = map[string]struct{}{
	"mkl":          {},
	"mkl-service":  {},
	"intel-openmp": {},
	"openmp":       {},
}

// machineFieldSet is the top-level fields that describe the exporting
// machine rather than the environment.
var machineFieldSet = map[string]struct{}{
	"prefix":           {},
	"channel_priority": {},
}

const (
	blasName     = "libblas"
	openBLASPin  = "libblas=*=*openblas"
	openBLASMark = "*openblas"
)

// Transformer rewrites environment documents against a rule table.
type Transformer struct {
	rules domain.RuleTable
}

// NewTransformer creates a Transformer using the given rule table.
func NewTransformer(rules domain.RuleTable) *Transformer {
	return &Transformer{rules: rules}
}

// Transform returns the platform-neutral form of doc for an environment
// exported on origin. The input document is never modified, so one loaded
// document can be transformed for several origins.
func (t *Transformer) Transform(doc *domain.EnvironmentDocument, origin domain.Platform) *domain.EnvironmentDocument {
	rules := t.rules.Lookup(origin)

	deps := make([]domain.Dependency, 0, len(doc.Dependencies)+1)
	hasOpenBLAS := false

	for _, dep := range doc.Dependencies {
		switch d := dep.(type) {
		case domain.PlainSpec:
			name := d.Name()
			if rules.ContainsConda(string(d)) {
				continue
			}
			if _, drop := blasDropSet[name]; drop {
				continue
			}
			if name == blasName && strings.Contains(string(d), openBLASMark) {
				hasOpenBLAS = true
			}
			deps = append(deps, d)
		case domain.PipBlock:
			deps = append(deps, tagRequirements(d, rules, origin))
		default:
			deps = append(deps, dep)
		}
	}

	// An environment that declares no dependencies gets none invented
	// for it. Everything else is steered towards OpenBLAS so the solve
	// does not pick MKL back up on the target platforms.
	if !hasOpenBLAS && len(doc.Dependencies) > 0 {
		deps = append([]domain.Dependency{domain.PlainSpec(openBLASPin)}, deps...)
	}

	return &domain.EnvironmentDocument{
		Name:         doc.Name,
		Channels:     append([]string(nil), doc.Channels...),
		Dependencies: deps,
		Fields:       keepPortableFields(doc.Fields),
	}
}

// tagRequirements marks platform-locked pip requirements with the origin's
// platform_system clause. Requirements already carrying a marker are left
// alone, which keeps the rewrite idempotent.
func tagRequirements(block domain.PipBlock, rules domain.RuleSet, origin domain.Platform) domain.PipBlock {
	reqs := make([]string, 0, len(block.Requirements))
	for _, req := range block.Requirements {
		if rules.ContainsPip(req) && !strings.Contains(req, ";") {
			req = req + " ; " + origin.MarkerClause()
		}
		reqs = append(reqs, req)
	}
	return domain.PipBlock{Requirements: reqs}
}

func keepPortableFields(fields []domain.Field) []domain.Field {
	kept := make([]domain.Field, 0, len(fields))
	for _, field := range fields {
		if _, machine := machineFieldSet[field.Key]; machine {
			continue
		}
		kept = append(kept, field)
	}
	return kept
}
