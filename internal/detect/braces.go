package detect

import (
	"ucfix/internal/diag"
)

// BraceBalance is the deliberately crude whole-document brace check: it
// counts every '{' and '}' including those inside comments and strings.
// The lexical paren detectors are more precise; the two families can
// disagree about braces hiding in comments. That split is kept on
// purpose: this one is the conservative global safety net.
//
// More '}' than '{' cannot be localized safely and stays informational.
// More '{' than '}' carries a repair that inserts a single '}' before the
// first top-level construct keyword (or at end of document), recomputed
// against whatever text the repair is applied to.
func BraceBalance(doc string) []diag.Issue {
	count := 0
	for i := 0; i < len(doc); i++ {
		switch doc[i] {
		case '{':
			count++
		case '}':
			count--
		}
	}

	switch {
	case count < 0:
		return []diag.Issue{diag.New(
			diag.KindBraceBalance,
			1,
			headSpan(doc),
			"Too many '}' braces found.",
		)}
	case count > 0:
		issue := diag.New(
			diag.KindBraceBalance,
			1,
			headSpan(doc),
			"Unbalanced braces: more '{' than '}'.",
		)
		return []diag.Issue{issue.WithRepair(diag.Repair{
			Op:    diag.RepairCloseBrace,
			Guard: diag.GuardBracesOpen,
		})}
	default:
		return nil
	}
}
