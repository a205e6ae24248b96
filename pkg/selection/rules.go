// File: pkg/selection/rules.go
package selection

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Rule is one parsed ignore-file pattern.
type Rule struct {
	reSelf  *regexp.Regexp // Matches the candidate path itself.
	reChild *regexp.Regexp // Matches descendants of a matching path.
	Pattern string         // Original pattern text after prefix handling.
	Source  string         // Ignore file the rule came from.
	Dir     string         // Root-relative directory that declared the rule.
	LineNo  int            // 1-based line number in the source file.
	Negate  bool           // True for "!" re-include rules.
	DirOnly bool           // True for trailing "/" directory-only rules.
}

// RuleSet is the ordered collection of ignore rules active for one branch of
// the walk. Deeper directories append after their ancestors so their rules
// take precedence under last-match-wins evaluation. The set is append-only:
// Extend returns a fresh slice and never mutates the receiver, so sibling
// branches can safely share an inherited prefix.
type RuleSet []Rule

// Extend returns a new RuleSet with more appended after the inherited rules.
func (rs RuleSet) Extend(more []Rule) RuleSet {
	if len(more) == 0 {
		return rs
	}
	out := make(RuleSet, 0, len(rs)+len(more))
	out = append(out, rs...)
	return append(out, more...)
}

// Match evaluates rel against the set. It reports whether any rule matched
// and whether the winning (last) match was a negation.
func (rs RuleSet) Match(rel string, isDir bool) (matched, negated bool) {
	for i := range rs {
		candidate, ok := rs[i].scope(rel)
		if !ok {
			continue
		}
		if rs[i].matches(candidate, isDir) {
			matched = true
			negated = rs[i].Negate
		}
	}
	return matched, negated
}

// scope trims rel to the rule's declaring directory. Rules only apply to
// paths strictly below the directory whose ignore file declared them.
func (r *Rule) scope(rel string) (string, bool) {
	if r.Dir == "" {
		return rel, true
	}
	prefix := r.Dir + "/"
	if !strings.HasPrefix(rel, prefix) {
		return "", false
	}
	return rel[len(prefix):], true
}

// matches reports whether the rule matches the scoped candidate path.
// Directory-only rules match a directory itself and anything beneath a
// matching directory, but never a plain file of the same name.
func (r *Rule) matches(candidate string, isDir bool) bool {
	if r.DirOnly {
		if isDir && r.reSelf.MatchString(candidate) {
			return true
		}
		return r.reChild.MatchString(candidate)
	}
	return r.reSelf.MatchString(candidate) || r.reChild.MatchString(candidate)
}

// ParseRules reads ignore-file lines from r and returns the parsed rules.
// Blank lines and "#" comments contribute nothing; malformed patterns are
// reported through onSkip (which may be nil) and dropped rather than failing
// the whole load.
func ParseRules(r io.Reader, dir, source string, onSkip func(line string, lineNo int)) []Rule {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rule, ok := parseLine(scanner.Text(), dir, source, lineNo)
		if !ok {
			continue
		}
		if rule == nil {
			if onSkip != nil {
				onSkip(scanner.Text(), lineNo)
			}
			continue
		}
		rules = append(rules, *rule)
	}
	return rules
}

// parseLine parses one ignore-file line. It returns (nil, true) for lines
// that legitimately carry no rule (blank, comment) and (nil, false) for
// malformed patterns that should be reported and skipped.
func parseLine(line, dir, source string, lineNo int) (*Rule, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, true
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Escaped leading "#" and "!" are literal pattern characters.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	// A pattern with a slash in its body is anchored to the declaring
	// directory; a bare name matches at any depth below it.
	anchored := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false
	}
	anchored = anchored || strings.Contains(trimmed, "/")

	body := globToRegex(trimmed)

	prefix := `^(?:.*/)?`
	if anchored {
		prefix = `^`
	}

	reSelf, err := regexp.Compile(prefix + body + `$`)
	if err != nil {
		return nil, false
	}
	reChild, err := regexp.Compile(prefix + body + `/.*$`)
	if err != nil {
		return nil, false
	}

	return &Rule{
		reSelf:  reSelf,
		reChild: reChild,
		Pattern: trimmed,
		Source:  source,
		Dir:     dir,
		LineNo:  lineNo,
		Negate:  negate,
		DirOnly: dirOnly,
	}, true
}
