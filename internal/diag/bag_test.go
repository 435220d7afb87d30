package diag

import "testing"

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(New(KindSemicolonMissing, uint32(i+1), Span{}, "m"))
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 issues after limit, got %d", bag.Len())
	}
	if bag.Add(New(KindSemicolonMissing, 9, Span{}, "m")) {
		t.Error("Add past the limit must return false")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	a := New(KindSemicolonMissing, 3, Span{Start: 10, End: 20}, "Likely missing ';' at line 3.")
	b := New(KindParenBalance, 1, Span{Start: 0, End: 5}, "Unbalanced parentheses: More '(' than ')'.")
	bag.Add(a)
	bag.Add(b)
	if bag.Add(a) {
		t.Error("an exact duplicate must be dropped")
	}

	if bag.Len() != 2 {
		t.Fatalf("expected 2 issues after dedup, got %d", bag.Len())
	}
	items := bag.Items()
	if items[0].Kind != KindSemicolonMissing || items[1].Kind != KindParenBalance {
		t.Errorf("dedup must preserve first-occurrence order, got %v then %v", items[0].Kind, items[1].Kind)
	}
}

func TestBagDedupDistinguishesSpan(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(KindBraceBalance, 1, Span{Start: 0, End: 10}, "same message"))
	bag.Add(New(KindBraceBalance, 1, Span{Start: 0, End: 20}, "same message"))
	if bag.Len() != 2 {
		t.Errorf("issues differing only in span are not duplicates, got %d", bag.Len())
	}
}

func TestBagDuplicatesDoNotConsumeLimit(t *testing.T) {
	bag := NewBag(2)
	a := New(KindSemicolonMissing, 1, Span{}, "a")
	b := New(KindSemicolonMissing, 2, Span{}, "b")
	bag.Add(a)
	bag.Add(a)
	bag.Add(a)
	if !bag.Add(b) {
		t.Error("duplicates must not fill limit slots")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 distinct issues, got %d", bag.Len())
	}
	if bag.Items()[1].Message != "b" {
		t.Errorf("second slot = %q, want the unique issue", bag.Items()[1].Message)
	}
}

func TestBagLargeLimit(t *testing.T) {
	bag := NewBag(70000)
	if bag.Cap() != 70000 {
		t.Errorf("Cap = %d, want 70000", bag.Cap())
	}
}

func TestCountRepairable(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(KindParenBalance, 1, Span{}, "info only"))
	bag.Add(New(KindSemicolonMissing, 2, Span{}, "fixable").WithRepair(Repair{
		Op:   RepairAppendToLine,
		Line: 2,
		Text: ";",
	}))

	if !bag.HasRepairable() {
		t.Error("expected HasRepairable to be true")
	}
	if got := bag.CountRepairable(); got != 1 {
		t.Errorf("expected 1 repairable issue, got %d", got)
	}
}

func TestWithRepairRaisesSeverity(t *testing.T) {
	issue := New(KindCpptextBrace, 1, Span{}, "m")
	if issue.Severity != SevInfo {
		t.Fatalf("fresh issue must be info, got %v", issue.Severity)
	}
	fixed := issue.WithRepair(Repair{Op: RepairInsertLineAfter, Line: 1, Text: "{"})
	if fixed.Severity != SevWarning {
		t.Errorf("repairable issue must be warning, got %v", fixed.Severity)
	}
	if !fixed.Repairable() {
		t.Error("expected Repairable to be true")
	}
	if issue.Repairable() {
		t.Error("WithRepair must not mutate the receiver")
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindCpptextBrace, KindBraceBalance, KindDefaultpropsBrace,
		KindSemicolonMissing, KindParenBalance, KindParenControlClose,
		KindStructEnumClose, KindParenExtraClose, KindParenExtraOpen,
	}
	for _, k := range kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("no-such-kind"); ok {
		t.Error("unknown name must not parse")
	}
	if KindUnknown.String() != "unknown" {
		t.Errorf("KindUnknown.String() = %q", KindUnknown.String())
	}
}
