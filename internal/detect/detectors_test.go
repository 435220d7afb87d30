package detect

import (
	"testing"

	"ucfix/internal/diag"
	"ucfix/internal/fix"
)

func TestCpptextBraceMissing(t *testing.T) {
	doc := "cpptext\nvoid Tick();\n"
	issues := CpptextBrace(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Kind != diag.KindCpptextBrace || issue.Line != 1 {
		t.Errorf("unexpected issue %+v", issue)
	}
	if issue.Message != "Missing '{' after 'cpptext' at line 1." {
		t.Errorf("message = %q", issue.Message)
	}

	got, changed := fix.Apply(doc, *issue.Repair)
	if !changed || got != "cpptext\n{\nvoid Tick();\n" {
		t.Errorf("repair produced %q", got)
	}
}

func TestCpptextBracePresent(t *testing.T) {
	cases := []string{
		"cpptext {\n}\n",
		"cpptext\n{\n}\n",
		"cpptext\n\n// native glue\n{\n}\n",
	}
	for _, doc := range cases {
		if issues := CpptextBrace(doc); len(issues) != 0 {
			t.Errorf("doc %q: expected no issues, got %d", doc, len(issues))
		}
	}
}

func TestBraceBalanceMoreOpens(t *testing.T) {
	doc := "class Foo extends Object;\nfunction Bar()\n{\n    x = 1;\n"
	issues := BraceBalance(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Message != "Unbalanced braces: more '{' than '}'." {
		t.Errorf("message = %q", issue.Message)
	}
	if !issue.Repairable() {
		t.Fatal("more '{' than '}' must carry a repair")
	}
	if issue.Span.Start != 0 || issue.Span.End != 50 {
		t.Errorf("span = %v, want head span", issue.Span)
	}
}

func TestBraceBalanceMoreCloses(t *testing.T) {
	doc := "}\n"
	issues := BraceBalance(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Message != "Too many '}' braces found." {
		t.Errorf("message = %q", issues[0].Message)
	}
	if issues[0].Repairable() {
		t.Error("extra '}' cannot be localized and must stay informational")
	}
}

func TestBraceBalanceCountsInsideComments(t *testing.T) {
	// the whole-document count is raw on purpose
	doc := "// {\n"
	if issues := BraceBalance(doc); len(issues) != 1 {
		t.Errorf("raw count must see the brace in the comment, got %d issues", len(issues))
	}
}

func TestDefaultpropsBraceMissing(t *testing.T) {
	doc := "defaultproperties\nHealth=100\n"
	issues := DefaultpropsBrace(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	got, changed := fix.Apply(doc, *issues[0].Repair)
	if !changed {
		t.Fatal("expected the repair to apply")
	}
	want := "defaultproperties {\n}\nHealth=100\n"
	if got != want {
		t.Errorf("repair produced %q, want %q", got, want)
	}
}

func TestDefaultpropsBracePresent(t *testing.T) {
	cases := []string{
		"defaultproperties {\n}\n",
		"defaultproperties\n{\n}\n",
	}
	for _, doc := range cases {
		if issues := DefaultpropsBrace(doc); len(issues) != 0 {
			t.Errorf("doc %q: expected no issues, got %d", doc, len(issues))
		}
	}
}

func TestSemicolonMissingVarDecl(t *testing.T) {
	doc := "var int Count\n"
	issues := SemicolonMissing(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Message != "Likely missing ';' at line 1." {
		t.Errorf("message = %q", issue.Message)
	}

	got, changed := fix.Apply(doc, *issue.Repair)
	if !changed || got != "var int Count;\n" {
		t.Errorf("repair produced %q", got)
	}
}

func TestSemicolonMissingAssignment(t *testing.T) {
	doc := "Health = 100\n"
	issues := SemicolonMissing(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
}

func TestSemicolonMissingSkips(t *testing.T) {
	cases := []string{
		"var int Count;\n",
		"// var int Count\n",
		"/* Health = 1 */\n",
		"\n",
		"function Foo()\n",
		"if (x) {\n",
		"}\n",
	}
	for _, doc := range cases {
		if issues := SemicolonMissing(doc); len(issues) != 0 {
			t.Errorf("doc %q: expected no issues, got %d", doc, len(issues))
		}
	}
}

func TestParenBalanceDirections(t *testing.T) {
	if issues := ParenBalance("foo(\n"); len(issues) != 1 ||
		issues[0].Message != "Unbalanced parentheses: More '(' than ')'." {
		t.Errorf("unexpected issues %+v", issues)
	}
	if issues := ParenBalance("foo)\n"); len(issues) != 1 ||
		issues[0].Message != "Unbalanced parentheses: More ')' than '('." {
		t.Errorf("unexpected issues %+v", issues)
	}
	if issues := ParenBalance("foo()\n"); len(issues) != 0 {
		t.Errorf("balanced doc produced %d issues", len(issues))
	}
}

func TestParenControlClose(t *testing.T) {
	doc := "if (x > 0\n    DoThing();\n"
	issues := ParenControlClose(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Line != 1 {
		t.Errorf("line = %d", issues[0].Line)
	}

	got, changed := fix.Apply(doc, *issues[0].Repair)
	if !changed || got != "if (x > 0)\n    DoThing();\n" {
		t.Errorf("repair produced %q", got)
	}
}

func TestParenControlCloseOnlyOffByOne(t *testing.T) {
	cases := []string{
		"if (x > 0)\n",
		"if ((x > 0\n", // off by two, too risky
		"while (Foo(x))\n",
	}
	for _, doc := range cases {
		if issues := ParenControlClose(doc); len(issues) != 0 {
			t.Errorf("doc %q: expected no issues, got %d", doc, len(issues))
		}
	}
}

func TestParenExtraClose(t *testing.T) {
	doc := "DoThing(x));\n"
	issues := ParenExtraClose(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Message != "Unmatched ')' at line 1." {
		t.Errorf("message = %q", issue.Message)
	}
	if issue.Span.Start != 10 || issue.Span.End != 11 {
		t.Errorf("span = %v", issue.Span)
	}

	got, changed := fix.Apply(doc, *issue.Repair)
	if !changed || got != "DoThing(x);\n" {
		t.Errorf("repair produced %q", got)
	}
}

func TestParenExtraCloseSingleShot(t *testing.T) {
	doc := "a));\nb));\n"
	issues := ParenExtraClose(doc)
	if len(issues) != 1 {
		t.Fatalf("one finding per scan, got %d", len(issues))
	}
	if issues[0].Line != 1 {
		t.Errorf("first unmatched closer is on line 1, got %d", issues[0].Line)
	}
}

func TestParenExtraCloseIgnoresCommentsAndStrings(t *testing.T) {
	cases := []string{
		"// )\n",
		"/* ) */\n",
		"s = \")\";\n",
		"n = ')';\n",
	}
	for _, doc := range cases {
		if issues := ParenExtraClose(doc); len(issues) != 0 {
			t.Errorf("doc %q: expected no issues, got %d", doc, len(issues))
		}
	}
}

func TestParenExtraOpenRightmost(t *testing.T) {
	doc := "a = (1;\nb = (2;\n"
	issues := ParenExtraOpen(doc)
	if len(issues) != 1 {
		t.Fatalf("one finding per scan, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Line != 2 {
		t.Errorf("rightmost unmatched opener is on line 2, got %d", issue.Line)
	}
	if issue.Message != "Unmatched '(' at line 2." {
		t.Errorf("message = %q", issue.Message)
	}

	got, changed := fix.Apply(doc, *issue.Repair)
	if !changed || got != "a = (1;\nb = 2;\n" {
		t.Errorf("repair produced %q", got)
	}
}

func TestParenExtraOpenBalanced(t *testing.T) {
	if issues := ParenExtraOpen("Foo(Bar(x));\n"); len(issues) != 0 {
		t.Errorf("balanced doc produced %d issues", len(issues))
	}
}

func TestStructEnumCloseAtEndOfDocument(t *testing.T) {
	doc := "enum EColor {\n    RED,\n    GREEN,\n"
	issues := StructEnumClose(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Message != "Missing '}' to close enum block starting at line 1." {
		t.Errorf("message = %q", issue.Message)
	}

	got, changed := fix.Apply(doc, *issue.Repair)
	if !changed {
		t.Fatal("expected the repair to apply")
	}
	want := "enum EColor {\n    RED,\n    GREEN,\n}\n"
	if got != want {
		t.Errorf("repair produced %q, want %q", got, want)
	}
}

func TestStructEnumCloseBeforeNextKeyword(t *testing.T) {
	doc := "enum EColor {\n    RED,\nvar int X;\n"
	issues := StructEnumClose(doc)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	got, changed := fix.Apply(doc, *issues[0].Repair)
	if !changed {
		t.Fatal("expected the repair to apply")
	}
	want := "enum EColor {\n    RED,\n}\nvar int X;\n"
	if got != want {
		t.Errorf("repair produced %q, want %q", got, want)
	}
}

func TestStructEnumCloseNested(t *testing.T) {
	doc := "struct Outer {\n    struct Inner {\n    }\n}\n"
	if issues := StructEnumClose(doc); len(issues) != 0 {
		t.Errorf("closed nested blocks produced %d issues", len(issues))
	}
}
