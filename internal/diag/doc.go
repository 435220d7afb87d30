// Package diag defines the issue model shared by the detectors, the repair
// engine, and the CLI surface.
//
// # Data model
//
// Issue is the central record. It contains:
//
//   - Kind: closed tag identifying the detector that produced it, with a
//     stable string form (kind.go).
//   - Severity: Info for informational findings that carry no repair,
//     Warning for repairable defects (severity.go).
//   - Message: human oriented text including the 1-based anchor line.
//   - Line: 1-based line number of the primary anchor.
//   - Span: half-open byte offsets into the exact document text the scan
//     ran on; stale as soon as any repair is applied.
//   - Repair: optional descriptor of a deterministic single-point fix.
//
// # Repairs
//
// Repair is intentionally data-only: a tagged operation plus its anchors
// and guard, interpreted by internal/fix against the current document
// text. Modeling repairs as descriptors instead of closures keeps every
// issue serialisable and makes application auditable in isolation from
// detection.
//
// Spans and anchor offsets are valid only against the text they were
// computed from. Callers must re-scan after applying any repair before
// trusting further locations; the guards in internal/fix turn repairs that
// no longer apply into silent no-ops rather than errors.
package diag
