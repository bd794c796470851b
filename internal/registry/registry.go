// =============================================================================
// People CSV Loader - Department Registry
// =============================================================================
//
// The registry turns the free-text department column into deduplicated
// Department values. It is an insertion-ordered arena: departments are stored
// once, in first-seen order, and persons refer to them by ID.
//
// NORMALIZED KEY:
//   trim + Unicode case folding. Internal whitespace runs and diacritics are
//   kept, so "R&D  West" and "R&D West" are different departments.
//
// A Registry belongs to a single load and is not safe for concurrent use.
//
// =============================================================================

package registry

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// Registry assigns sequential IDs to distinct departments.
type Registry struct {
	fold  cases.Caser
	byKey map[string]int
	arena []types.Department
}

// New creates an empty registry. The first department gets ID 1.
func New() *Registry {
	return &Registry{
		fold:  cases.Fold(),
		byKey: make(map[string]int),
	}
}

// Key returns the lookup key for a raw department name.
func (r *Registry) Key(rawName string) string {
	return r.fold.String(strings.TrimSpace(rawName))
}

// Resolve returns the department for rawName, creating it on first sight.
// An existing department is returned unchanged, keeping the display name
// captured on first insertion.
func (r *Registry) Resolve(rawName string) (types.Department, bool) {
	key := r.Key(rawName)
	if idx, ok := r.byKey[key]; ok {
		return r.arena[idx], false
	}

	dep := types.Department{
		ID:   len(r.arena) + 1,
		Name: strings.TrimSpace(rawName),
	}
	r.byKey[key] = len(r.arena)
	r.arena = append(r.arena, dep)

	return dep, true
}

// Lookup dereferences a department ID.
func (r *Registry) Lookup(id int) (types.Department, bool) {
	if id < 1 || id > len(r.arena) {
		return types.Department{}, false
	}
	return r.arena[id-1], true
}

// All returns the departments in first-seen order.
// The returned slice is a copy.
func (r *Registry) All() []types.Department {
	out := make([]types.Department, len(r.arena))
	copy(out, r.arena)
	return out
}

// Len returns the number of distinct departments.
func (r *Registry) Len() int {
	return len(r.arena)
}
