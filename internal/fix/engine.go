package fix

import (
	"errors"

	"ucfix/internal/diag"
)

// ErrNoRepairs is returned when no repairs were applied.
var ErrNoRepairs = errors.New("no applicable repairs found")

// ApplyMode determines selection strategy for repairs.
type ApplyMode uint8

const (
	// ApplyModeAll applies every repairable issue from the scan, in order,
	// against the evolving text.
	ApplyModeAll ApplyMode = iota
	// ApplyModeOnce applies only the first repairable issue.
	ApplyModeOnce
	// ApplyModeKind applies only issues of TargetKind.
	ApplyModeKind
)

// ApplyOptions configures how repairs are selected.
type ApplyOptions struct {
	Mode       ApplyMode
	TargetKind diag.Kind
}

// AppliedRepair records a successfully applied repair.
type AppliedRepair struct {
	Kind    diag.Kind
	Op      diag.RepairOp
	Line    uint32
	Message string
}

// SkippedRepair captures a repair that turned into a no-op, with a reason.
type SkippedRepair struct {
	Kind   diag.Kind
	Line   uint32
	Reason string
}

// Result aggregates the outcome of one batch application.
type Result struct {
	Doc     string // text after all selected repairs
	Applied []AppliedRepair
	Skipped []SkippedRepair
}

// ApplyAll applies the selected repairs from one scan's issue list, in the
// order returned, against the same evolving text value. Repairs that no
// longer apply against the mutated text are recorded as skipped and
// otherwise ignored. Issue spans are stale after the first successful
// application; callers must re-scan before trusting locations again.
func ApplyAll(doc string, issues []diag.Issue, opts ApplyOptions) (*Result, error) {
	result := &Result{
		Doc:     doc,
		Applied: make([]AppliedRepair, 0),
		Skipped: make([]SkippedRepair, 0),
	}

	for _, issue := range issues {
		if issue.Repair == nil {
			continue
		}
		if opts.Mode == ApplyModeKind && issue.Kind != opts.TargetKind {
			continue
		}

		next, changed := Apply(result.Doc, *issue.Repair)
		if !changed {
			result.Skipped = append(result.Skipped, SkippedRepair{
				Kind:   issue.Kind,
				Line:   issue.Line,
				Reason: "repair no longer applicable",
			})
			continue
		}
		result.Doc = next
		result.Applied = append(result.Applied, AppliedRepair{
			Kind:    issue.Kind,
			Op:      issue.Repair.Op,
			Line:    issue.Line,
			Message: issue.Message,
		})

		if opts.Mode == ApplyModeOnce {
			break
		}
	}

	if len(result.Applied) == 0 {
		return result, ErrNoRepairs
	}
	return result, nil
}
