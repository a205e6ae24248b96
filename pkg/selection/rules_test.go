package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, dir, src string) []Rule {
	t.Helper()
	return ParseRules(strings.NewReader(src), dir, "test", nil)
}

func TestParseRulesSkipsCommentsAndBlanks(t *testing.T) {
	rules := parseString(t, "", "# comment\n\n   \n*.log\n")
	require.Len(t, rules, 1)
	assert.Equal(t, "*.log", rules[0].Pattern)
	assert.False(t, rules[0].Negate)
}

func TestParseRulesNegationAndDirOnly(t *testing.T) {
	rules := parseString(t, "", "!keep.log\nbuild/\n")
	require.Len(t, rules, 2)

	assert.True(t, rules[0].Negate)
	assert.Equal(t, "keep.log", rules[0].Pattern)

	assert.True(t, rules[1].DirOnly)
	assert.False(t, rules[1].Negate)
}

func TestParseRulesEscapedPrefixes(t *testing.T) {
	rules := parseString(t, "", "\\#literal\n\\!literal\n")
	require.Len(t, rules, 2)
	assert.Equal(t, "#literal", rules[0].Pattern)
	assert.Equal(t, "!literal", rules[1].Pattern)
	assert.False(t, rules[1].Negate)
}

func TestParseRulesReportsMalformedLines(t *testing.T) {
	var skipped []int
	ParseRules(strings.NewReader("!\n/\nok.txt\n"), "", "test", func(_ string, lineNo int) {
		skipped = append(skipped, lineNo)
	})
	assert.Equal(t, []int{1, 2}, skipped)
}

func TestRuleSetLastMatchWins(t *testing.T) {
	rules := RuleSet(parseString(t, "", "*.log\n!keep.log\n"))

	matched, negated := rules.Match("debug.log", false)
	assert.True(t, matched)
	assert.False(t, negated)

	matched, negated = rules.Match("keep.log", false)
	assert.True(t, matched)
	assert.True(t, negated)

	matched, _ = rules.Match("notes.txt", false)
	assert.False(t, matched)
}

func TestRuleSetDirOnly(t *testing.T) {
	rules := RuleSet(parseString(t, "", "build/\n"))

	matched, _ := rules.Match("build", true)
	assert.True(t, matched, "should match the directory itself")

	matched, _ = rules.Match("build/out.o", false)
	assert.True(t, matched, "should match files beneath the directory")

	matched, _ = rules.Match("build", false)
	assert.False(t, matched, "should not match a plain file of the same name")
}

func TestRuleSetAnchoring(t *testing.T) {
	rules := RuleSet(parseString(t, "", "/top.txt\nsub/leaf.txt\nname.txt\n"))

	// Leading "/" anchors to the declaring directory.
	matched, _ := rules.Match("top.txt", false)
	assert.True(t, matched)
	matched, _ = rules.Match("deep/top.txt", false)
	assert.False(t, matched)

	// A slash in the body anchors too.
	matched, _ = rules.Match("sub/leaf.txt", false)
	assert.True(t, matched)
	matched, _ = rules.Match("other/sub/leaf.txt", false)
	assert.False(t, matched)

	// A bare name matches at any depth.
	matched, _ = rules.Match("a/b/name.txt", false)
	assert.True(t, matched)
}

func TestRuleSetDoubleStar(t *testing.T) {
	rules := RuleSet(parseString(t, "", "docs/**\n**/vendor/\na/**/b.txt\n"))

	matched, _ := rules.Match("docs/guide/intro.md", false)
	assert.True(t, matched)

	matched, _ = rules.Match("x/y/vendor", true)
	assert.True(t, matched)

	matched, _ = rules.Match("a/b.txt", false)
	assert.True(t, matched, "** should span zero directories")
	matched, _ = rules.Match("a/c/d/b.txt", false)
	assert.True(t, matched)
}

func TestRuleScopedToDeclaringDirectory(t *testing.T) {
	rules := RuleSet(parseString(t, "sub", "secret.txt\n"))

	matched, _ := rules.Match("sub/secret.txt", false)
	assert.True(t, matched)

	matched, _ = rules.Match("secret.txt", false)
	assert.False(t, matched, "rule must not apply outside its declaring directory")

	matched, _ = rules.Match("other/secret.txt", false)
	assert.False(t, matched)
}

func TestExtendDoesNotMutateInherited(t *testing.T) {
	base := RuleSet(parseString(t, "", "*.log\n"))
	left := base.Extend(parseString(t, "a", "!keep.log\n"))
	right := base.Extend(parseString(t, "b", "*.tmp\n"))

	require.Len(t, base, 1)
	require.Len(t, left, 2)
	require.Len(t, right, 2)
	assert.Equal(t, "a", left[1].Dir)
	assert.Equal(t, "b", right[1].Dir)

	// Extending with nothing returns the receiver unchanged.
	same := base.Extend(nil)
	assert.Len(t, same, 1)
}

func TestDeeperRulesOverrideAncestors(t *testing.T) {
	rules := RuleSet(parseString(t, "", "*.tmp\n")).
		Extend(parseString(t, "textures", "!*.tmp\n"))

	matched, negated := rules.Match("a.tmp", false)
	assert.True(t, matched)
	assert.False(t, negated)

	matched, negated = rules.Match("textures/a.tmp", false)
	assert.True(t, matched)
	assert.True(t, negated, "deeper negation must override the ancestor exclude")
}
