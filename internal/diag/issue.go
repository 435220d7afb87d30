package diag

import "fmt"

// Span is a half-open (Start, End) byte range into the document a scan ran
// on. It is used for highlighting/navigation only and becomes stale the
// moment any repair mutates the text.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Issue describes one detected structural defect.
type Issue struct {
	Kind     Kind
	Severity Severity
	Message  string
	Line     uint32 // 1-based anchor line
	Span     Span
	Repair   *Repair // nil when no deterministic fix exists
}

// Repairable reports whether the issue carries a repair.
func (i Issue) Repairable() bool {
	return i.Repair != nil
}

// New constructs an informational issue.
func New(kind Kind, line uint32, span Span, msg string) Issue {
	return Issue{
		Kind:     kind,
		Severity: SevInfo,
		Message:  msg,
		Line:     line,
		Span:     span,
	}
}

// WithRepair attaches a repair descriptor and raises severity to Warning.
func (i Issue) WithRepair(r Repair) Issue {
	i.Repair = &r
	i.Severity = SevWarning
	return i
}
