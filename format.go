package dumpr

import (
	"fmt"
	"reflect"

	"github.com/mattn/go-runewidth"
)

// Formatter renders one value as its replacement text. Formatters receive
// the member's value and return a single-line representation; the printer
// adds indentation and the line terminator itself, so formatters are never
// aware of nesting depth. A member whose value is nil prints the null line
// and bypasses its formatter. [FormatType] and [FormatField] wrap typed
// functions into this uniform signature.
type Formatter func(v any) string

// formatValue renders a final value through its default textual form.
// fmt's %v verb honors Stringer and error implementations, so values print
// the way they would through the standard library.
func formatValue(cfg *config, v reflect.Value) string {
	s := fmt.Sprintf("%v", v.Interface())
	if cfg.trimStrings > 0 && v.Kind() == reflect.String {
		s = truncate(s, cfg.trimStrings)
	}
	return s
}

// typeName is the header emitted for composites and collections: the bare
// type name when the type has one, the full reflect spelling otherwise
// ("map[string]int", "[]byte", anonymous structs).
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Trimmed returns a string formatter that truncates to max display cells.
// Width is measured with go-runewidth, so a full-width character counts as
// two cells. Strings at or under max pass through unchanged.
func Trimmed(max int) func(string) string {
	return func(s string) string {
		return truncate(s, max)
	}
}

// Redacted returns a string formatter that replaces any value with a fixed
// mask, for fields that must never reach logs in the clear.
func Redacted() func(string) string {
	return func(string) string {
		return redactedMask
	}
}

// redactedMask replaces redacted values.
const redactedMask = "[REDACTED]"

func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "")
}
