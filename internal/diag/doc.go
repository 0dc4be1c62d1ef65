// Package diag defines the issue model shared by every analysis phase.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced by the
//     lexer, parser, semantic checks, the reflector and lint rules.
//   - Offer an ordered Collection that the driver flattens per file and the
//     CLI filters and renders.
//   - Model fix suggestions as structured edits. Applying them is left to
//     external tooling; quill only reports them.
//
// # Data model
//
// Issue is the central record. It contains:
//
//   - Level – Help, Note, Warning or Error (level.go); ordered, so the highest
//     level of a run decides the exit status.
//   - Code – compact numeric identifier (codes.go) with a stable string form.
//   - Rule – identity of the producer: "parser", "semantics", "reflector" or
//     "plugin/rule" for lint rules.
//   - Message – human oriented text; keep it short and actionable.
//   - Annotations – one primary span plus optional secondary spans, each with
//     an optional message.
//   - Notes, Help – free text shown below the source excerpt.
//   - Suggestion – optional Fix; an issue is fixable iff it carries one.
//
// # Ordering
//
// Collection keeps insertion order and never deduplicates. The driver relies
// on this to reproduce enumeration order in the final report, and every
// filter (OnlyFixable, FilterMinLevel) preserves relative order.
//
// Rendering lives in internal/diagfmt.
package diag
