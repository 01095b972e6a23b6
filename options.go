package dumpr

import (
	"fmt"
	"reflect"
)

// Option configures a Printer during [New]. Options apply in order.
// Exclusions are sets, so repeating one is a no-op; formatter
// registrations are idempotent per key: the first formatter registered
// for a given type or field wins and later ones are ignored.
type Option func(*config) error

// ExcludeType omits every composite member whose declared type is T.
// Members of other types are unaffected and keep their order.
func ExcludeType[T any]() Option {
	return func(c *config) error {
		c.excludeTypes[reflect.TypeFor[T]()] = struct{}{}
		return nil
	}
}

// ExcludeField omits the named field of struct type T. The name must
// denote an exported field declared on T, or New fails.
func ExcludeField[T any](name string) Option {
	return func(c *config) error {
		m, err := resolveField(reflect.TypeFor[T](), name)
		if err != nil {
			return err
		}
		c.excludeFields[m.Field] = struct{}{}
		return nil
	}
}

// FormatType renders every composite member of declared type T through fn
// instead of the default algorithm. A field-level formatter for the same
// member takes precedence, and exclusions beat formatters.
func FormatType[T any](fn func(T) string) Option {
	return func(c *config) error {
		if fn == nil {
			return fmt.Errorf("%w: type %s", ErrNilFormatter, reflect.TypeFor[T]())
		}
		c.addTypeFormat(reflect.TypeFor[T](), func(v any) string {
			return fn(v.(T))
		})
		return nil
	}
}

// FormatField renders the named field of struct type T through fn. The
// field's declared type must be exactly V; a mismatch fails New rather
// than panicking during printing. V is inferred from fn:
//
//	dumpr.FormatField[Person]("Name", dumpr.Trimmed(6))
func FormatField[T, V any](name string, fn func(V) string) Option {
	return func(c *config) error {
		m, err := resolveField(reflect.TypeFor[T](), name)
		if err != nil {
			return err
		}
		if fn == nil {
			return fmt.Errorf("%w: field %s", ErrNilFormatter, m.Field)
		}
		if vt := reflect.TypeFor[V](); m.typ != vt {
			return fmt.Errorf("%w: formatter for %s takes %s, field is declared %s",
				ErrFormatterMismatch, m.Field, vt, m.typ)
		}
		c.addFieldFormat(m.Field, func(v any) string {
			return fn(v.(V))
		})
		return nil
	}
}

// FinalType marks T atomic: its values render through their default
// textual form and are never decomposed, even when T is a struct or array
// type. time.Time, time.Duration and uuid.UUID are final out of the box.
func FinalType[T any]() Option {
	return func(c *config) error {
		c.finalTypes[reflect.TypeFor[T]()] = struct{}{}
		return nil
	}
}

// MaxDepth caps composite nesting at n levels; values beyond the cap
// render as a fixed marker line instead of recursing. Zero, the default,
// means unlimited. Negative values are treated as zero.
func MaxDepth(n int) Option {
	return func(c *config) error {
		if n < 0 {
			n = 0
		}
		c.maxDepth = n
		return nil
	}
}

// TrimStrings caps every string value in the output at max display cells,
// measured the way [Trimmed] measures. Use [Trimmed] as a formatter to cap
// a single member instead. Zero, the default, means no cap. Negative
// values are treated as zero.
func TrimStrings(max int) Option {
	return func(c *config) error {
		if max < 0 {
			max = 0
		}
		c.trimStrings = max
		return nil
	}
}
