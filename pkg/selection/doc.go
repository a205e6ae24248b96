// Package selection implements the file-selection engine behind the flatten
// CLI: deciding, for an arbitrary directory tree, which files appear in the
// output.
//
// Decisions follow a layered precedence chain, highest tier first: explicit
// includes (which override everything, including ignore files and the hidden
// policy), explicit excludes, the ignore control files themselves, the
// hidden-entry policy, and finally .gitignore/.ignore rules where the last
// matching rule wins and "!" re-includes. Rules from deeper directories
// override ancestor rules. Paths nothing claims are included.
//
// The walker visits directories depth-first in lexicographic order, prunes
// excluded subtrees (unless an explicit include forces descent), and recovers
// from per-entry access errors so one unreadable entry never aborts a run.
package selection
