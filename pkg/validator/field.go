package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// resolveField applies accessor to a zero probe of T and returns the name of
// the struct field whose address it returned.
func resolveField[T, F any](accessor func(*T) *F, tagName string) (string, error) {
	if accessor == nil {
		return "", fmt.Errorf("%w: nil accessor", ErrInvalidRuleDefinition)
	}

	probe := new(T)
	root := reflect.ValueOf(probe).Elem()
	if root.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s is not a struct", ErrInvalidRuleDefinition, root.Type())
	}

	ptr, err := probeAccessor(accessor, probe)
	if err != nil {
		return "", err
	}
	if ptr == nil {
		return "", fmt.Errorf("%w: accessor returned nil", ErrInvalidRuleDefinition)
	}

	addr := reflect.ValueOf(ptr).Pointer()
	target := reflect.TypeFor[F]()

	name, ok := findField(root, addr, target, tagName)
	if !ok {
		return "", fmt.Errorf("%w: accessor for %s does not reference a field of %s",
			ErrInvalidRuleDefinition, target, root.Type())
	}
	return name, nil
}

// probeAccessor calls accessor on probe. Accessors that dereference a nil
// pointer of the zero probe are definition errors, not crashes.
func probeAccessor[T, F any](accessor func(*T) *F, probe *T) (ptr *F, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: accessor panicked: %v", ErrInvalidRuleDefinition, r)
		}
	}()
	return accessor(probe), nil
}

// findField walks the struct value looking for a field at addr with type target.
// Nested struct fields are searched depth-first and named with a dotted path.
func findField(v reflect.Value, addr uintptr, target reflect.Type, tagName string) (string, bool) {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := v.Field(i)

		if fv.UnsafeAddr() == addr && sf.Type == target {
			return fieldName(sf, tagName), true
		}

		if sf.Type.Kind() != reflect.Struct {
			continue
		}
		start := fv.UnsafeAddr()
		if addr < start || addr >= start+sf.Type.Size() {
			continue
		}
		nested, ok := findField(fv, addr, target, tagName)
		if !ok {
			continue
		}
		if sf.Anonymous {
			return nested, true
		}
		return fieldName(sf, tagName) + "." + nested, true
	}
	return "", false
}

func fieldName(sf reflect.StructField, tagName string) string {
	if tagName == "" {
		return sf.Name
	}
	tag, _, _ := strings.Cut(sf.Tag.Get(tagName), ",")
	if tag == "" || tag == "-" {
		return sf.Name
	}
	return tag
}
