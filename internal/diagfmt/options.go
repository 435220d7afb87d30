// Package diagfmt renders scan issues for the CLI: a pretty human format
// with source context, a stable single-line short format, and JSON for
// tooling. It performs no scanning and owns no state.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode string

const (
	PathModeAuto     PathMode = "auto"
	PathModeAbsolute PathMode = "absolute"
	PathModeRelative PathMode = "relative"
	PathModeBasename PathMode = "basename"
)

// PrettyOpts configures pretty-printing of issues.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	ShowContext bool // include the offending source line with a caret
	ShowRepairs bool // include a one-line repair description
}

// JSONOpts configures JSON output of issues.
type JSONOpts struct {
	PathMode       PathMode
	IncludeSpans   bool
	IncludeRepairs bool
}
