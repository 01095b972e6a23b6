package dumpr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	// nullRepr stands in for nil values of any kind.
	nullRepr = "null"
	// cycleMarker replaces a value whose identity already rendered during
	// the current call. It is a handled case, never an error.
	cycleMarker = "Cyclic reference detected"
	// depthMarker caps recursion when MaxDepth is set.
	depthMarker = "Max depth reached"
	// indentUnit is one nesting level of a composite member line.
	indentUnit = "\t"
)

// identity keys the visited set. The address alone is not enough: a struct
// and its first field live at the same address but are distinct values, so
// the type is part of the key. Slices need more still: a sub-slice shares
// its parent's base address and type, so the length tells them apart.
type identity struct {
	addr   uintptr
	length int
	typ    reflect.Type
}

// walker carries the state of one top-level call: the rule set, the output
// buffer and the visited identities. A fresh walker is created per call
// and discarded at its end; visited identities must never leak between
// calls, or unrelated instances of the same object would falsely report as
// cyclic on later calls.
type walker struct {
	cfg     *config
	out     *strings.Builder
	visited map[identity]struct{}
}

// dump renders v and returns the accumulated text. Reflection or formatter
// panics surface as [ErrUnsupportedValue]; partial output would be
// misleading, so the text is discarded on error.
func dump(cfg *config, v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("%w: %v", ErrUnsupportedValue, r)
		}
	}()
	w := &walker{
		cfg:     cfg,
		out:     &strings.Builder{},
		visited: make(map[identity]struct{}),
	}
	w.walk(reflect.ValueOf(v), 0)
	return w.out.String(), nil
}

// walk renders one value at the given composite nesting depth, in a fixed
// order: nil handling, cycle detection, pointer unwrapping, then
// classification into final, keyed, sequence or composite rendering. Each
// class is terminal for the value; collections and composites re-enter
// walk for their nested values.
func (w *walker) walk(v reflect.Value, depth int) {
	if isNil(v) {
		w.line(nullRepr)
		return
	}

	if id, ok := identityOf(v); ok {
		if _, seen := w.visited[id]; seen {
			w.line(cycleMarker)
			return
		}
		w.visited[id] = struct{}{}
	}

	// Pointers and interfaces are transparent: the pointee runs through
	// the full order itself, at the same depth.
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		w.walk(v.Elem(), depth)
		return
	}

	if w.cfg.maxDepth > 0 && depth > w.cfg.maxDepth {
		w.line(depthMarker)
		return
	}

	switch classify(w.cfg, v.Type()) {
	case kindFinal:
		w.line(formatValue(w.cfg, v))
	case kindKeyed:
		w.keyed(v, depth)
	case kindSequence:
		w.sequence(v, depth)
	default:
		w.composite(v, depth)
	}
}

// keyed renders a map: the type name, then one line per entry holding the
// key with its trailing terminator stripped, the separator, and the full
// recursive rendering of the value. Go randomizes map iteration, so keys
// are sorted into a deterministic order first.
func (w *walker) keyed(v reflect.Value, depth int) {
	w.line(typeName(v.Type()))
	for _, key := range sortedKeys(v) {
		w.out.WriteString(strings.TrimSuffix(w.render(key, depth), newline))
		w.out.WriteString(" : ")
		w.walk(v.MapIndex(key), depth)
	}
}

// sequence renders a slice or array: the type name, then every element's
// full recursive rendering. Elements carry no indentation or separators of
// their own.
func (w *walker) sequence(v reflect.Value, depth int) {
	w.line(typeName(v.Type()))
	for i := 0; i < v.Len(); i++ {
		w.walk(v.Index(i), depth)
	}
}

// composite renders a struct: the type name, then one indented member line
// per field that survives the exclusion rules. A member renders through
// its resolved formatter, or recurses one nesting level deeper. Formatter
// output gets the terminator appended here. Formatters see neither depth
// nor nil: a nil member takes the default path and prints the null line.
func (w *walker) composite(v reflect.Value, depth int) {
	w.line(typeName(v.Type()))
	indent := strings.Repeat(indentUnit, depth+1)
	for _, m := range fieldsOf(v.Type()) {
		f, r := w.cfg.resolve(m)
		if r == ruleOmit {
			continue
		}
		w.out.WriteString(indent)
		w.out.WriteString(m.Name)
		w.out.WriteString(" = ")
		mv := m.read(v)
		if r == ruleFormat && !isNil(mv) {
			w.line(f(mv.Interface()))
			continue
		}
		w.walk(mv, depth+1)
	}
}

// render runs a nested walk into a detached buffer. The visited set is
// shared with the parent: it belongs to the call, not the buffer.
func (w *walker) render(v reflect.Value, depth int) string {
	sub := walker{cfg: w.cfg, out: &strings.Builder{}, visited: w.visited}
	sub.walk(v, depth)
	return sub.out.String()
}

// line writes s followed by the line terminator.
func (w *walker) line(s string) {
	w.out.WriteString(s)
	w.out.WriteString(newline)
}

// isNil reports whether v renders as null: the invalid zero Value (an
// untyped nil) or a nil pointer, interface, map, slice, channel or
// function.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// identityOf returns the visited-set key for values with reference
// identity. Only pointers, maps and slices can introduce cycles; other
// values are copies and cannot reference themselves.
func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		return identity{addr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		return identity{addr: v.Pointer(), length: v.Len(), typ: v.Type()}, true
	}
	return identity{}, false
}

// sortedKeys returns v's map keys in a deterministic order: numeric for
// integer and float keys, lexical for strings, rendered form for anything
// else.
func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}
