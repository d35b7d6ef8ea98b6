package console

import (
	"sort"
	"strings"
	"sync"
)

// Registry is a mutable mapping from alias names to color-spec strings.
// A registered value may itself be a named color, a semantic name, or a
// hex string; it is resolved against those tables, never re-resolved
// against the registry.
type Registry struct {
	mu     sync.RWMutex
	colors map[string]string
}

// NewRegistry returns a registry seeded with the built-in aliases.
func NewRegistry() *Registry {
	seed := []struct {
		names string
		value string
	}{
		{"h1", "#fff"},
		{"txt,text", "#bbb"},
		{"error", "#f00"},
		{"warn", "#ffea00"},
		{"key", "#4CF"},
		{"opt,option", "#78aeff"},
		{"filename", "#e0c16c"},
		{"command", "#dbd488"},
		{"success", "#32CD32"},
		{"success_dim", "#80ad80"},
	}
	colors := make(map[string]string)
	for _, entry := range seed {
		for _, name := range strings.Split(entry.names, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			colors[name] = entry.value
			// The empty tag means "default text color".
			if name == "text" {
				colors[""] = entry.value
			}
		}
	}
	return &Registry{colors: colors}
}

// Add inserts or overwrites an alias. The value is not validated here;
// a bad value simply fails resolution later.
func (r *Registry) Add(name, value string) {
	r.mu.Lock()
	r.colors[name] = value
	r.mu.Unlock()
}

// Lookup returns the registered value for name, if any. The lock is
// held only for the map read, never across resolution or rendering.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.RLock()
	v, ok := r.colors[name]
	r.mu.RUnlock()
	return v, ok
}

// Names returns the registered alias names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.colors))
	for name := range r.colors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// defaultRegistry returns the process-wide registry, created lazily on
// first use and shared by every call into the engine.
var defaultRegistry = sync.OnceValue(NewRegistry)

// RegisterColor adds an alias to the process-wide registry for the
// remaining lifetime of the process.
func RegisterColor(name, value string) {
	defaultRegistry().Add(name, value)
}

// RegisteredColors returns the alias names in the process-wide
// registry, sorted.
func RegisteredColors() []string {
	return defaultRegistry().Names()
}
