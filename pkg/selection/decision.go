// File: pkg/selection/decision.go
package selection

// Decision is the single-valued outcome of evaluating one candidate path.
type Decision uint8

const (
	// Include means the path survives selection.
	Include Decision = iota
	// Exclude means the path is filtered out.
	Exclude
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return "unknown"
	}
}

// step is one tier of the precedence chain. It reports its decision and
// whether it claimed the path; unclaimed paths fall through to the next tier.
type step func(m *Matcher, rel string, isDir bool, rules RuleSet) (Decision, bool)

// chain is the ordered precedence ladder, highest tier first:
// explicit includes, explicit excludes, control files, hidden policy,
// ignore-file rules. Paths no tier claims are included by default.
var chain = []step{
	stepIncludes,
	stepExcludes,
	stepControlFiles,
	stepHidden,
	stepIgnoreRules,
}

// stepIncludes applies the explicit includes list. A match is an
// unconditional Include that overrides every lower tier.
func stepIncludes(m *Matcher, rel string, _ bool, _ RuleSet) (Decision, bool) {
	if matchesEntry(m.cfg.Includes, rel) {
		return Include, true
	}
	return Include, false
}

// stepExcludes applies the explicit excludes list.
func stepExcludes(m *Matcher, rel string, _ bool, _ RuleSet) (Decision, bool) {
	if matchesEntry(m.cfg.Excludes, rel) {
		return Exclude, true
	}
	return Include, false
}

// stepControlFiles drops the ignore control files themselves. They steer
// selection and are never content, independent of the hidden policy.
func stepControlFiles(_ *Matcher, rel string, isDir bool, _ RuleSet) (Decision, bool) {
	if isDir {
		return Include, false
	}
	base := pathBase(rel)
	for _, name := range controlFileNames {
		if base == name {
			return Exclude, true
		}
	}
	return Include, false
}

// stepHidden applies the hidden-entry policy: with AllowHidden off, any
// dot-prefixed path segment excludes the candidate.
func stepHidden(m *Matcher, rel string, _ bool, _ RuleSet) (Decision, bool) {
	if m.cfg.AllowHidden {
		return Include, false
	}
	if hasHiddenSegment(rel) {
		return Exclude, true
	}
	return Include, false
}

// stepIgnoreRules applies the accumulated ignore-file rules. The last
// matching rule wins; a negated winner re-includes, which falls through to
// the default rather than claiming the path.
func stepIgnoreRules(_ *Matcher, rel string, isDir bool, rules RuleSet) (Decision, bool) {
	matched, negated := rules.Match(rel, isDir)
	if matched && !negated {
		return Exclude, true
	}
	return Include, false
}

// hasHiddenSegment reports whether any slash-separated segment of rel starts
// with a dot. The "." and ".." special entries do not count as hidden.
func hasHiddenSegment(rel string) bool {
	start := 0
	for i := 0; i <= len(rel); i++ {
		if i != len(rel) && rel[i] != '/' {
			continue
		}
		seg := rel[start:i]
		if len(seg) > 0 && seg[0] == '.' && seg != "." && seg != ".." {
			return true
		}
		start = i + 1
	}
	return false
}

// pathBase returns the final slash-separated component of rel.
func pathBase(rel string) string {
	for i := len(rel) - 1; i >= 0; i-- {
		if rel[i] == '/' {
			return rel[i+1:]
		}
	}
	return rel
}
