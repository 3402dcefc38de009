package ignore

import "sort"

// DefaultNames are excluded from every workspace scan.
var DefaultNames = []string{".git"}

// Filter excludes top-level workspace entries by exact name. Matching is
// case-sensitive and does not look at path components or globs.
type Filter struct {
	names map[string]struct{}
}

// NewFilter creates a filter for names. Empty names are dropped.
func NewFilter(names ...string) *Filter {
	f := &Filter{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n != "" {
			f.names[n] = struct{}{}
		}
	}
	return f
}

// Default returns a filter for DefaultNames.
func Default() *Filter {
	return NewFilter(DefaultNames...)
}

// With returns a copy of f that also excludes names.
func (f *Filter) With(names ...string) *Filter {
	return NewFilter(append(f.Names(), names...)...)
}

// Ignores reports whether name is excluded. A nil filter excludes nothing.
func (f *Filter) Ignores(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.names[name]
	return ok
}

// Names returns the excluded names in sorted order.
func (f *Filter) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.names))
	for n := range f.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
