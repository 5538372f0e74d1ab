package api

import "strings"

// FormPath joins parentPath and component with "/", dropping whichever is empty.
func FormPath(parentPath, component string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{parentPath, component} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// Path derives the relative path of a route: its parent path joined with
// its last path component. With no components the parent path is returned
// unchanged.
func Path(r Route) string {
	components := r.PathComponents()
	if len(components) == 0 {
		return r.ParentPath()
	}
	return FormPath(r.ParentPath(), components[len(components)-1])
}

// PathBuilder accumulates path components.
type PathBuilder struct {
	components []string
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// Add appends a component.
func (b *PathBuilder) Add(component string) *PathBuilder {
	b.components = append(b.components, component)
	return b
}

// Components returns a copy of the accumulated components.
func (b *PathBuilder) Components() []string {
	out := make([]string, len(b.components))
	copy(out, b.components)
	return out
}
