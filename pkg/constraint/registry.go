package constraint

import (
	"fmt"
	"sort"
	"sync"
)

type entry struct {
	check    Check
	template string
}

// Registry maps constraint kinds to their validation logic and default
// message templates. A registry created with NewRegistry carries all
// builtin kinds; applications register custom kinds on top.
//
// Registries are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]entry
}

// NewRegistry creates a registry pre-populated with the builtin
// constraint kinds.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Kind]entry)}
	registerBuiltins(r)
	return r
}

// Register binds a kind to its check function and the literal message
// template used when no resource bundle entry resolves. Registering an
// already-known kind fails; builtins cannot be silently replaced.
func (r *Registry) Register(kind Kind, check Check, template string) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if check == nil {
		return ErrNilCheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[kind]; exists {
		return fmt.Errorf("%w: %s", ErrKindRegistered, kind)
	}

	r.entries[kind] = entry{check: check, template: template}
	return nil
}

// MustRegister is Register that panics on failure. Intended for
// package-level custom kind registration where a conflict is a
// programming error.
func (r *Registry) MustRegister(kind Kind, check Check, template string) {
	if err := r.Register(kind, check, template); err != nil {
		panic(err)
	}
}

// Lookup returns the check and default message template for a kind.
func (r *Registry) Lookup(kind Kind) (Check, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[kind]
	if !ok {
		return nil, "", false
	}
	return e.check, e.template, true
}

// Has reports whether the kind is registered.
func (r *Registry) Has(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[kind]
	return ok
}

// Kinds returns all registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func registerBuiltins(r *Registry) {
	registerStringKinds(r)
	registerNumericKinds(r)
	registerDateKinds(r)
	registerPatternKinds(r)
	registerChoiceKinds(r)
	registerCollectionKinds(r)
	registerLookupKinds(r)
}
