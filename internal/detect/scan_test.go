package detect

import (
	"reflect"
	"testing"

	"ucfix/internal/diag"
	"ucfix/internal/fix"
)

func kindsOf(issues []diag.Issue) []diag.Kind {
	kinds := make([]diag.Kind, len(issues))
	for i, issue := range issues {
		kinds[i] = issue.Kind
	}
	return kinds
}

func hasKind(issues []diag.Issue, kind diag.Kind) bool {
	for _, issue := range issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}

func TestScanCleanDocument(t *testing.T) {
	doc := "class Foo extends Object;\n\nfunction Bar()\n{\n    x = 1;\n}\n\ndefaultproperties\n{\n}\n"
	issues := Scan(doc, Options{Mode: ModeExtended, UnmatchedOpen: true})
	if len(issues) != 0 {
		t.Errorf("clean document produced %v", kindsOf(issues))
	}
}

func TestScanStrictSkipsExtendedDetectors(t *testing.T) {
	doc := "if (x > 0\n    DoThing();\n"
	strict := Scan(doc, Options{Mode: ModeStrict})
	if hasKind(strict, diag.KindParenControlClose) {
		t.Error("strict mode must not run paren-control-close")
	}

	extended := Scan(doc, Options{Mode: ModeExtended})
	if !hasKind(extended, diag.KindParenControlClose) {
		t.Error("extended mode must run paren-control-close")
	}
}

func TestScanUnmatchedOpenToggle(t *testing.T) {
	doc := "a = (1;\n"
	off := Scan(doc, Options{Mode: ModeExtended})
	if hasKind(off, diag.KindParenExtraOpen) {
		t.Error("paren-extra-open must stay off without its toggle")
	}

	on := Scan(doc, Options{Mode: ModeStrict, UnmatchedOpen: true})
	if !hasKind(on, diag.KindParenExtraOpen) {
		t.Error("the toggle must enable paren-extra-open in strict mode too")
	}
}

func TestScanIdempotent(t *testing.T) {
	doc := "cpptext\nvar int Count\nif (x > 0\n"
	opts := Options{Mode: ModeExtended, UnmatchedOpen: true}

	first := Scan(doc, opts)
	second := Scan(doc, opts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two scans of the same text differ:\n%+v\n%+v", first, second)
	}
}

func TestScanMaxIssues(t *testing.T) {
	doc := ""
	for i := 0; i < 10; i++ {
		doc += "a = 1\n"
	}
	issues := Scan(doc, Options{MaxIssues: 3})
	if len(issues) != 3 {
		t.Errorf("expected the issue limit to hold, got %d", len(issues))
	}
}

func TestScanRepairConvergence(t *testing.T) {
	docs := []string{
		"var int Count\n",
		"defaultproperties\nHealth=100\n",
		"if (x > 0\n    DoThing();\n",
		"DoThing(x));\n",
	}
	opts := Options{Mode: ModeExtended, UnmatchedOpen: true}

	for _, doc := range docs {
		issues := Scan(doc, opts)
		for _, issue := range issues {
			if issue.Repair == nil {
				continue
			}
			fixed, changed := fix.Apply(doc, *issue.Repair)
			if !changed {
				t.Errorf("doc %q: repair for %v did not apply", doc, issue.Kind)
				continue
			}
			for _, again := range Scan(fixed, opts) {
				if again.Kind == issue.Kind && again.Line == issue.Line {
					t.Errorf("doc %q: %v at line %d reported again after its repair", doc, issue.Kind, issue.Line)
				}
			}
		}
	}
}

func TestScanFixLoopConverges(t *testing.T) {
	doc := "var int Count\nif (x > 0\n    DoThing();\ndefaultproperties\nHealth=100\n"
	opts := Options{Mode: ModeExtended}

	text := doc
	for pass := 0; pass < 8; pass++ {
		issues := Scan(text, opts)
		res, err := fix.ApplyAll(text, issues, fix.ApplyOptions{Mode: fix.ApplyModeAll})
		if err != nil {
			break
		}
		text = res.Doc
	}

	for _, issue := range Scan(text, opts) {
		if issue.Repairable() {
			t.Errorf("repairable %v at line %d survived the fix loop; text:\n%s", issue.Kind, issue.Line, text)
		}
	}
}
