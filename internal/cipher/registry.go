package cipher

import (
	"fmt"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Registry maps method keywords to operations. It is immutable once built.
type Registry struct {
	ops   map[domain.Method]Operation
	order []domain.Method
}

// NewRegistry builds a registry from ops, rejecting nil and duplicate methods.
func NewRegistry(ops ...Operation) (*Registry, error) {
	r := &Registry{ops: make(map[domain.Method]Operation, len(ops))}

	for _, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("cannot register nil operation")
		}
		m := op.Method()
		if m == "" {
			return nil, fmt.Errorf("operation method cannot be empty")
		}
		if _, exists := r.ops[m]; exists {
			return nil, fmt.Errorf("operation %s is already registered", m)
		}
		r.ops[m] = op
		r.order = append(r.order, m)
	}

	return r, nil
}

// DefaultRegistry holds the five methods of the language.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		NewCaesarOperation(),
		NewVigenereOperation(),
		NewXOROperation(),
		NewBase64Operation(),
		NewSubstitutionOperation(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Get(method domain.Method) (Operation, bool) {
	op, ok := r.ops[method]
	return op, ok
}

// List returns operations in registration order.
func (r *Registry) List() []Operation {
	ops := make([]Operation, 0, len(r.order))
	for _, m := range r.order {
		ops = append(ops, r.ops[m])
	}
	return ops
}

// Apply dispatches to the operation registered for method.
func (r *Registry) Apply(method domain.Method, text string, key domain.Key, verb domain.Verb) (string, error) {
	op, ok := r.Get(method)
	if !ok {
		return "", apperr.NewUnknownMethod(fmt.Sprintf("unknown method '%s'", method))
	}
	return op.Apply(text, key, verb)
}
