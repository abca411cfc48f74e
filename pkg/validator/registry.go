package validator

import (
	"fmt"
	"reflect"
	"sync"
)

// entry is a type-erased registered validator.
type entry struct {
	name     string
	rules    []RuleInfo
	validate func(instance any) Result
}

// Registry maps a shape type to the ordered validators that apply to it.
// Populate it at startup with Register; lookups are safe for concurrent use.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type][]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type][]entry)}
}

// Register appends validators for the shape type T, in order.
// It panics on a nil registry or validator: registration is startup code.
func Register[T any](reg *Registry, validators ...*Validator[T]) {
	t := reflect.TypeFor[T]()
	if reg == nil {
		panic(fmt.Errorf("%w: nil registry for %s", ErrInvalidValidator, t))
	}

	added := make([]entry, 0, len(validators))
	for _, v := range validators {
		if v == nil {
			panic(fmt.Errorf("%w: nil validator for %s", ErrInvalidValidator, t))
		}
		added = append(added, entry{
			name:  v.Name(),
			rules: v.Rules(),
			validate: func(instance any) Result {
				return v.Validate(instance.(T))
			},
		})
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.entries == nil {
		reg.entries = make(map[reflect.Type][]entry)
	}
	reg.entries[t] = append(reg.entries[t], added...)
}

// Validate runs every validator registered for the dynamic type of instance
// and unions their failures. instance may be a T or a *T. A nil instance or a
// type without validators yields a valid result.
func (r *Registry) Validate(instance any) Result {
	value, entries := r.lookup(instance)
	if len(entries) == 0 {
		return Result{}
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, e.validate(value))
	}
	return Combine(results...)
}

// Names returns the names of the validators applicable to instance.
func (r *Registry) Names(instance any) []string {
	_, entries := r.lookup(instance)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// Describe lists every registered validator grouped by shape type name.
func (r *Registry) Describe() map[string][]ValidatorInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]ValidatorInfo, len(r.entries))
	for t, entries := range r.entries {
		infos := make([]ValidatorInfo, 0, len(entries))
		for _, e := range entries {
			infos = append(infos, ValidatorInfo{Name: e.name, Rules: e.rules})
		}
		out[t.String()] = infos
	}
	return out
}

// ValidatorInfo describes a registered validator.
type ValidatorInfo struct {
	Name  string     `json:"name" yaml:"name"`
	Rules []RuleInfo `json:"rules" yaml:"rules"`
}

// lookup dereferences pointers and returns the value together with a
// snapshot of the validators registered for its type.
func (r *Registry) lookup(instance any) (any, []entry) {
	if r == nil || instance == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	r.mu.RLock()
	entries := r.entries[rv.Type()]
	r.mu.RUnlock()

	return rv.Interface(), entries
}
