package dumpr

import (
	"fmt"
	"reflect"
	"sync"
)

// Field identifies one exported field of a struct type: the owning type
// plus the field name. It is comparable, so it serves as the registration
// key for field-level exclusions and formatters. Two Fields obtained for
// the same field of the same type are always equal.
type Field struct {
	Owner reflect.Type
	Name  string
}

// String returns the field in Owner.Name form, the same spelling profile
// entries use.
func (f Field) String() string {
	return typeName(f.Owner) + "." + f.Name
}

// FieldOf resolves the named exported field of struct type T. Pointer
// types are dereferenced to their struct element first. The name must
// denote an exported field declared on T; anything else fails with
// [ErrNotStruct], [ErrUnknownField] or [ErrUnexportedField].
func FieldOf[T any](name string) (Field, error) {
	m, err := resolveField(reflect.TypeFor[T](), name)
	if err != nil {
		return Field{}, err
	}
	return m.Field, nil
}

// member is the introspection product for one field: its identity plus the
// declared type and the index used to read its value off an instance.
type member struct {
	Field
	typ   reflect.Type
	index int
}

// read returns the member's value on v, which must be a struct value of
// the owning type.
func (m member) read(v reflect.Value) reflect.Value {
	return v.Field(m.index)
}

// fieldCache memoizes fieldsOf per struct type for the process lifetime.
var fieldCache sync.Map // reflect.Type -> []member

// fieldsOf enumerates the exported fields of struct type t in declaration
// order. Embedded structs appear as single members named after their type
// and render as nested composites. Unexported fields are not readable from
// outside the package and are skipped entirely.
func fieldsOf(t reflect.Type) []member {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]member)
	}
	members := make([]member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		members = append(members, member{
			Field: Field{Owner: t, Name: sf.Name},
			typ:   sf.Type,
			index: i,
		})
	}
	fieldCache.Store(t, members)
	return members
}

// resolveField validates a field selector against its owner type. Owner
// pointers are unwrapped to the struct they point at. Selectors that do
// not denote an exported field of a struct fail here, at configuration
// time, so no registration ever produces an unusable key.
func resolveField(owner reflect.Type, name string) (member, error) {
	if owner == nil {
		return member{}, fmt.Errorf("%w: no owner type", ErrNotStruct)
	}
	for owner.Kind() == reflect.Pointer {
		owner = owner.Elem()
	}
	if owner.Kind() != reflect.Struct {
		return member{}, fmt.Errorf("%w: %s", ErrNotStruct, owner)
	}
	for _, m := range fieldsOf(owner) {
		if m.Name == name {
			return m, nil
		}
	}
	if sf, ok := owner.FieldByName(name); ok && !sf.IsExported() {
		return member{}, fmt.Errorf("%w: %s.%s", ErrUnexportedField, typeName(owner), name)
	}
	return member{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, typeName(owner), name)
}
