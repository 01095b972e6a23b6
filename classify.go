package dumpr

import "reflect"

// kind is the closed set of printable value classes. Every value the
// walker reaches lands in exactly one of them; pointers and interfaces are
// unwrapped before classification and never reach it.
type kind int

const (
	kindFinal kind = iota
	kindKeyed
	kindSequence
	kindComposite
)

// classify places t into one of the four classes. The final-type check
// runs first: types registered as final must never be decomposed even when
// their underlying kind is iterable or structured: uuid.UUID is a [16]byte
// array and time.Time is a struct. The same priority keeps strings final
// despite being iterable.
func classify(cfg *config, t reflect.Type) kind {
	if _, ok := cfg.finalTypes[t]; ok {
		return kindFinal
	}
	switch t.Kind() {
	case reflect.Map:
		return kindKeyed
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Struct:
		return kindComposite
	default:
		// Bool, numeric kinds, string, chan, func and unsafe pointers all
		// render through their default textual form.
		return kindFinal
	}
}
