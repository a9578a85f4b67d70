package domain

// RuleSet names the packages known to be locked to a single platform,
// split by ecosystem.
type RuleSet struct {
	Conda map[string]struct{}
	Pip   map[string]struct{}
}

// NewRuleSet builds a RuleSet from raw name lists. Entries are reduced to
// their canonical package name, so a rules file may carry versioned specs.
func NewRuleSet(conda, pip []string) RuleSet {
	s := RuleSet{
		Conda: make(map[string]struct{}, len(conda)),
		Pip:   make(map[string]struct{}, len(pip)),
	}
	for _, name := range conda {
		s.Conda[SpecName(name)] = struct{}{}
	}
	for _, name := range pip {
		s.Pip[SpecName(name)] = struct{}{}
	}
	return s
}

// ContainsConda reports whether the conda spec names a platform-locked package.
func (s RuleSet) ContainsConda(spec string) bool {
	_, ok := s.Conda[SpecName(spec)]
	return ok
}

// ContainsPip reports whether the pip requirement names a platform-locked package.
func (s RuleSet) ContainsPip(req string) bool {
	_, ok := s.Pip[SpecName(req)]
	return ok
}

// RuleTable maps each origin platform to its platform-locked packages.
type RuleTable map[Platform]RuleSet

// Lookup returns the rule set for the given platform. A platform absent
// from the table yields an empty set, so the transform degrades to a no-op
// instead of failing.
func (t RuleTable) Lookup(p Platform) RuleSet {
	return t[p]
}
