package policy

import (
	"time"

	"usman/internal/domain/entity"

	"github.com/pkg/errors"
)

// Registry maps policy names to policies. It is populated during process
// startup and read-only afterwards, so no locking is required on the
// request path.
type Registry struct {
	policies map[string]*Policy
}

// NewRegistry creates an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]*Policy)}
}

// Register adds a named policy built from the given requirements.
// Registering the same name twice or a policy without requirements is a
// configuration error.
func (r *Registry) Register(name string, requirements ...Requirement) error {
	if name == "" {
		return errors.New("policy name must not be empty")
	}
	if len(requirements) == 0 {
		return errors.Errorf("policy %q must have at least one requirement", name)
	}
	if _, exists := r.policies[name]; exists {
		return errors.Errorf("policy %q is already registered", name)
	}

	r.policies[name] = &Policy{name: name, requirements: requirements}

	return nil
}

// Resolve looks up a policy by name. An unknown name is a configuration
// error; callers resolve policies while wiring routes at startup.
func (r *Registry) Resolve(name string) (*Policy, error) {
	p, ok := r.policies[name]
	if !ok {
		return nil, errors.Errorf("unknown policy %q", name)
	}

	return p, nil
}

// MustResolve is like Resolve but panics on an unknown name. It exists for
// startup wiring, where a missing policy must abort the process.
func (r *Registry) MustResolve(name string) *Policy {
	p, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}

	return p
}

// Evaluate resolves a policy by name and evaluates it against the claim set.
func (r *Registry) Evaluate(name string, claims entity.Claims, now time.Time) (Decision, error) {
	p, err := r.Resolve(name)
	if err != nil {
		return Decision{}, err
	}

	return p.Evaluate(claims, now), nil
}
