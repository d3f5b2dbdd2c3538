package naming

import "strconv"

// Registry tracks names already assigned within one document so every record
// gets a unique identifier. Lifecycle is one document's processing pass; each
// pipeline run owns its own instance, which is what makes parallel document
// runs safe without locking.
type Registry struct {
	assigned map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{assigned: make(map[string]struct{})}
}

// Reserve returns base if unused, otherwise the first base_2, base_3, …
// that is unused, and records the returned name. Given a fixed ordinal order
// of calls the result is deterministic.
func (r *Registry) Reserve(base string) string {
	name := base
	for n := 2; ; n++ {
		if _, taken := r.assigned[name]; !taken {
			r.assigned[name] = struct{}{}
			return name
		}
		name = base + "_" + strconv.Itoa(n)
	}
}

// Len returns the number of reserved names.
func (r *Registry) Len() int {
	return len(r.assigned)
}
