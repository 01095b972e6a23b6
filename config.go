package dumpr

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// config is the rule set a Printer prints with. Options assemble it during
// [New]; afterwards it is read-only, which is what makes one Printer safe
// for concurrent use.
type config struct {
	excludeTypes      map[reflect.Type]struct{}
	excludeFields     map[Field]struct{}
	excludeTypeNames  map[string]struct{}
	excludeFieldNames map[string]struct{}
	typeFormats       map[reflect.Type]Formatter
	fieldFormats      map[Field]Formatter
	redactFields      map[string]struct{}
	finalTypes        map[reflect.Type]struct{}
	maxDepth          int
	trimStrings       int
}

// defaultConfig returns the zero rule set: no exclusions, no formatters,
// and the built-in final types. time.Duration is int64 underneath and
// would be final regardless; it is registered anyway so the set reads as
// the complete contract.
func defaultConfig() *config {
	return &config{
		excludeTypes:      make(map[reflect.Type]struct{}),
		excludeFields:     make(map[Field]struct{}),
		excludeTypeNames:  make(map[string]struct{}),
		excludeFieldNames: make(map[string]struct{}),
		typeFormats:       make(map[reflect.Type]Formatter),
		fieldFormats:      make(map[Field]Formatter),
		redactFields:      make(map[string]struct{}),
		finalTypes: map[reflect.Type]struct{}{
			reflect.TypeFor[time.Time]():     {},
			reflect.TypeFor[time.Duration](): {},
			reflect.TypeFor[uuid.UUID]():     {},
		},
	}
}

// addTypeFormat registers f for type t. The first registration for a type
// wins; later ones are no-ops.
func (c *config) addTypeFormat(t reflect.Type, f Formatter) {
	if _, ok := c.typeFormats[t]; ok {
		return
	}
	c.typeFormats[t] = f
}

// addFieldFormat registers f for field fd. The first registration for a
// field wins; later ones are no-ops.
func (c *config) addFieldFormat(fd Field, f Formatter) {
	if _, ok := c.fieldFormats[fd]; ok {
		return
	}
	c.fieldFormats[fd] = f
}

// rule is the outcome of resolving the registry for one composite member.
type rule int

const (
	ruleOmit rule = iota
	ruleFormat
	ruleRecurse
)

// resolve decides how one composite member renders. Exclusion is checked
// before any formatter, so an excluded member stays omitted even when a
// formatter is registered for it. Redaction comes next: a profile exists
// to scrub output, so it beats compiled-in formatters. Then a field
// formatter beats a type formatter, and members with no rule at all
// recurse into the default algorithm. Both exclusion and formatting key on
// the member's declared type, not the runtime type of its current value.
func (c *config) resolve(m member) (Formatter, rule) {
	if _, ok := c.excludeTypes[m.typ]; ok {
		return nil, ruleOmit
	}
	if _, ok := c.excludeFields[m.Field]; ok {
		return nil, ruleOmit
	}
	if len(c.excludeTypeNames) > 0 {
		if _, ok := c.excludeTypeNames[typeName(m.typ)]; ok {
			return nil, ruleOmit
		}
	}
	if len(c.excludeFieldNames) > 0 {
		if _, ok := c.excludeFieldNames[m.String()]; ok {
			return nil, ruleOmit
		}
	}
	if len(c.redactFields) > 0 {
		if _, ok := c.redactFields[m.String()]; ok {
			return redactFormatter, ruleFormat
		}
	}
	if f, ok := c.fieldFormats[m.Field]; ok {
		return f, ruleFormat
	}
	if f, ok := c.typeFormats[m.typ]; ok {
		return f, ruleFormat
	}
	return nil, ruleRecurse
}

// redactFormatter masks any value, whatever its type.
var redactFormatter Formatter = func(any) string { return redactedMask }
