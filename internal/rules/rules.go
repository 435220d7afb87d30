// Package rules is the static rule table consumed by the detectors: keyword
// sets, block opener/closer expectations, and compiled line-shape matchers.
// It is purely data and safe to share across concurrent scans.
package rules

import "regexp"

// TopLevelKeywords are the construct keywords that may open a new top-level
// section of a class file. Detectors use them as anchors for "insert the
// missing closer before the next top-level thing".
var TopLevelKeywords = []string{
	"class", "function", "event", "state", "defaultproperties",
	"var", "struct", "enum", "cpptext", "replication",
}

// Keyword sets, kept apart so each detector states which grammar fragment
// it relies on. UnrealScript keywords are case-insensitive.
var (
	Declarations = []string{
		"class", "extends", "struct", "enum", "var", "const", "native",
		"replication", "defaultproperties", "cpptext", "state", "event",
		"function", "operator", "simulated", "static", "final", "abstract",
		"private", "protected", "public", "repnotify", "config",
		"transient", "within", "implements",
	}
	TypesCore = []string{
		"bool", "byte", "int", "float", "string", "name", "vector", "rotator",
	}
	Flow = []string{
		"if", "else", "while", "for", "switch", "case", "break", "return",
		"goto", "continue",
	}
	ClassModifiers = []string{
		"abstract", "native", "nativereplication", "placeable", "transient",
		"config", "perobjectconfig", "hidecategories", "showcategories",
		"dependson", "within", "implements",
	}
	FunctionSpecifiers = []string{
		"static", "simulated", "final", "private", "protected", "public",
		"native", "iterator", "latent", "event", "exec", "operator",
		"preoperator", "postoperator",
	}
	ParamSpecifiers    = []string{"out", "optional", "coerce"}
	PropertySpecifiers = []string{
		"config", "globalconfig", "const", "editconst", "editinline",
		"export", "native", "transient", "repnotify", "localized",
	}
)

// Compiled line-shape and anchor matchers. Each detector's grammar
// assumption lives here so it is inspectable and testable on its own.
var (
	// TopLevelToken matches the start of a top-level construct line,
	// including any run of whitespace the multiline anchor lets through.
	TopLevelToken = regexp.MustCompile(`(?mi)^\s*(class|function|event|state|defaultproperties|var|struct|enum|cpptext|replication)\b`)

	// ControlLine matches a single-line if/while/for header.
	ControlLine = regexp.MustCompile(`(?i)^\s*(if|while|for)\s*\(`)

	// VarDecl matches a var declaration line (already trimmed), e.g.
	// "var int Count" or "var(Display) config float Speed = 1.0".
	VarDecl = regexp.MustCompile(`(?i)^(var(\s+\w+|\([^)]*\))*)\s+[\w\[\]]+(\s*=\s*[^;]+)?$`)

	// Assign matches a simple "identifier = expression" line (trimmed).
	Assign = regexp.MustCompile(`^[A-Za-z_]\w*\s*=\s*[^;]+$`)

	// BlankOrComment matches an empty or pure line-comment line.
	BlankOrComment = regexp.MustCompile(`^\s*(//.*)?$`)

	// LeadingBrace matches a line (or tail) whose first non-space byte is '{'.
	LeadingBrace = regexp.MustCompile(`^\s*\{`)

	// CpptextWord finds the cpptext keyword on a line.
	CpptextWord = regexp.MustCompile(`(?i)\bcpptext\b`)

	// DefaultpropertiesWord finds every defaultproperties keyword.
	DefaultpropertiesWord = regexp.MustCompile(`(?i)\bdefaultproperties\b`)

	// StructEnumHeader matches a struct/enum header line that opens its
	// block on the same line.
	StructEnumHeader = regexp.MustCompile(`(?im)^\s*(struct|enum)\b[^\n]*\{`)

	// BraceToken finds the next brace of either kind.
	BraceToken = regexp.MustCompile(`[{}]`)
)

// IsTopLevelKeyword reports whether word (any case) opens a top-level
// construct.
func IsTopLevelKeyword(word string) bool {
	for _, kw := range TopLevelKeywords {
		if equalFold(word, kw) {
			return true
		}
	}
	return false
}

// equalFold is an ASCII-only case-insensitive compare; UnrealScript
// identifiers are ASCII.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
