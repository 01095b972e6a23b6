// Package dumpr renders object graphs as human-readable indented text.
//
// Output is for eyes and logs, never for parsing back. The central entry
// points are [Dump] and [Write], which render any value with the default
// rules, and [New], which builds a [Printer] with per-type and per-field
// overrides:
//
//	p, err := dumpr.New(
//		dumpr.ExcludeField[Person]("Age"),
//		dumpr.FormatField[Person]("Name", dumpr.Trimmed(6)),
//	)
//
// # Output Shape
//
// Every value renders as one of six cases, decided in this order: nil
// values print a bare "null" line; a value already rendered during the
// same call prints a fixed cyclic-reference marker; final values print
// their default textual form; maps print the type name and one "key :
// value" pair per entry; slices and arrays print the type name and each
// element in turn; structs print the type name and one indented member
// line per exported field:
//
//	Person
//		Name = Thomas
//		Height = 180.4
//
// Indentation is one tab per nesting level and applies only to struct
// member lines. Final types are never decomposed: all primitive kinds,
// plus time.Time, time.Duration and uuid.UUID out of the box. A UUID is
// a [16]byte array underneath but prints as one line, the same way a
// string prints whole rather than as a rune sequence. Register more with
// [FinalType].
//
// # Configuration
//
// Options configure a Printer at construction and never after, which is
// what makes a Printer safe for concurrent use:
//
//   - [ExcludeType] / [ExcludeField] → drop members from the output
//   - [FormatType] / [FormatField] → render members through a function
//   - [FinalType] → stop decomposition at a type
//   - [MaxDepth] → cap nesting for pathological graphs
//   - [TrimStrings] → cap string width across the whole dump
//
// Exclusion always wins over formatting, a field formatter wins over a
// type formatter, and the first formatter registered for a given type or
// field wins over later registrations. Formatters receive the member's
// value and return its replacement text; the declared field type decides
// which rules apply, not the runtime type. A nil member prints null and
// never reaches a formatter. [Trimmed] and [Redacted] are ready-made
// string formatters.
//
// Field selectors are plain names resolved against the owner type when
// the option is applied. A selector that names no exported field fails
// [New] with [ErrUnknownField], [ErrUnexportedField] or [ErrNotStruct];
// configuration mistakes never surface as misrendered output.
//
// # Cycles
//
// Self-referential graphs terminate: each call tracks the identity of
// every pointer, map and slice it has rendered, and a repeat prints
//
//	Cyclic reference detected
//
// in place of recursing. The visited set lives and dies with one call, so
// repeated dumps of the same value stay identical.
//
// # Profiles
//
// [Profile] is the declarative face of the same rules, for redacting or
// dropping fields via configuration files instead of code. Matching is by
// the printed names:
//
//	p, err := dumpr.New(dumpr.WithProfileYAML(data))
//
// # Errors
//
// The package exports sentinel errors for programmatic handling.
// Configuration problems ([ErrUnknownField], [ErrUnexportedField],
// [ErrNotStruct], [ErrNilFormatter], [ErrFormatterMismatch],
// [ErrInvalidProfile]) fail at [New]. [ErrUnsupportedValue] fails a
// single dump whose graph could not be rendered, typically a formatter
// panic. A cyclic reference is not an error.
package dumpr
