// File: pkg/selection/matcher.go
package selection

// Matcher evaluates candidate paths against the layered precedence chain:
// explicit includes, explicit excludes, control files, hidden policy,
// ignore-file rules, then default include. It holds no mutable state, so a
// decision is a pure function of (Config, RuleSet, path).
type Matcher struct {
	cfg *Config
}

// NewMatcher returns a Matcher bound to cfg.
func NewMatcher(cfg *Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// Evaluate returns the decision for one root-relative slash path. The chain
// is evaluated in precedence order and the first tier that claims the path
// determines the outcome; unclaimed paths are included.
func (m *Matcher) Evaluate(rel string, isDir bool, rules RuleSet) Decision {
	for _, s := range chain {
		if decision, claimed := s(m, rel, isDir, rules); claimed {
			return decision
		}
	}
	return Include
}
