package diag

import "fmt"

// Bag accumulates issues from detectors, collapsing exact duplicates by
// (kind, line, message, span) as they arrive. The upper bound counts
// distinct issues only, so a duplicate can never crowd a unique finding
// out of the list.
type Bag struct {
	items []Issue
	seen  map[string]bool
	max   int
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Issue, 0, max),
		seen:  make(map[string]bool, max),
		max:   max,
	}
}

// Add appends an issue, honoring the limit. Returns false when the issue
// was dropped as a duplicate or because the limit is reached.
func (b *Bag) Add(issue Issue) bool {
	key := fmt.Sprintf("%s:%d:%s:%s", issue.Kind, issue.Line, issue.Message, issue.Span)
	if b.seen[key] {
		return false
	}
	if len(b.items) >= b.max {
		return false
	}
	b.seen[key] = true
	b.items = append(b.items, issue)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the accumulated issues, in
// first-occurrence order.
// Do not modify the returned slice; it aliases the Bag's storage.
func (b *Bag) Items() []Issue {
	return b.items
}

// HasRepairable reports whether at least one issue carries a repair.
func (b *Bag) HasRepairable() bool {
	for i := range b.items {
		if b.items[i].Repair != nil {
			return true
		}
	}
	return false
}

// CountRepairable returns how many issues carry a repair.
func (b *Bag) CountRepairable() int {
	n := 0
	for i := range b.items {
		if b.items[i].Repair != nil {
			n++
		}
	}
	return n
}
