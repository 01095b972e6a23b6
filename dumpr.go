package dumpr

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrNotStruct reports a field selector whose owner is not a struct type.
	ErrNotStruct = errors.New("owner is not a struct type")
	// ErrUnknownField reports a field selector that names no exported field.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnexportedField reports a field selector that names an unexported field.
	ErrUnexportedField = errors.New("unexported field")
	// ErrNilFormatter reports a nil formatter function.
	ErrNilFormatter = errors.New("nil formatter")
	// ErrFormatterMismatch reports a field formatter whose value type does
	// not match the field's declared type.
	ErrFormatterMismatch = errors.New("formatter type mismatch")
	// ErrInvalidProfile reports a profile that fails to parse or validate.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrUnsupportedValue reports a value the walk could not render; the
	// whole dump fails rather than emitting a partial graph.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Printer renders object graphs as indented text using a fixed rule set.
// The rule set is immutable after [New], so a single Printer is safe for
// concurrent use; every call tracks its own visited identities.
type Printer struct {
	cfg *config
}

// New builds a Printer from the given options. Configuration problems
// (unknown field selectors, formatter type mismatches, invalid profiles)
// fail here, before anything prints. New with no options never fails.
func New(opts ...Option) (*Printer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Printer{cfg: cfg}, nil
}

// MustNew is [New] that panics on configuration errors, for package-level
// printers built from static options.
func MustNew(opts ...Option) *Printer {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Dump renders v and returns the text. Output always ends with the line
// terminator.
func (p *Printer) Dump(v any) (string, error) {
	return dump(p.cfg, v)
}

// Write renders v to w. The text is rendered in full before any byte is
// written, so a failed render writes nothing.
func (p *Printer) Write(w io.Writer, v any) error {
	s, err := p.Dump(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// defaultPrinter serves the package-level entry points.
var defaultPrinter = &Printer{cfg: defaultConfig()}

// Dump renders v with the default rule set.
func Dump(v any) (string, error) {
	return defaultPrinter.Dump(v)
}

// Write renders v to w with the default rule set.
func Write(w io.Writer, v any) error {
	return defaultPrinter.Write(w, v)
}
