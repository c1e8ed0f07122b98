// Package document models the root element whose attributes carry the
// active theme and accent. Styles are derived from these attributes only.
package document

import "sync"

// Root attributes read by the style layer.
const (
	AttrTheme  = "data-theme"
	AttrAccent = "data-accent"
)

// Observer is called after an attribute changes. A removal reports value "" and present false.
type Observer func(name, value string, present bool)

// Root is the document root element.
type Root struct {
	mu        sync.RWMutex
	attrs     map[string]string
	observers []Observer
}

// NewRoot creates a root with no attributes.
func NewRoot() *Root {
	return &Root{attrs: make(map[string]string)}
}

// SetAttribute sets name to value.
func (r *Root) SetAttribute(name, value string) {
	r.mu.Lock()
	r.attrs[name] = value
	observers := r.observers
	r.mu.Unlock()

	for _, fn := range observers {
		fn(name, value, true)
	}
}

// RemoveAttribute removes name if present.
func (r *Root) RemoveAttribute(name string) {
	r.mu.Lock()
	_, ok := r.attrs[name]
	delete(r.attrs, name)
	observers := r.observers
	r.mu.Unlock()

	if !ok {
		return
	}

	for _, fn := range observers {
		fn(name, "", false)
	}
}

// Attribute returns the value of name.
func (r *Root) Attribute(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.attrs[name]

	return v, ok
}

// Observe registers fn for attribute changes.
func (r *Root) Observe(fn Observer) {
	r.mu.Lock()
	r.observers = append(r.observers, fn)
	r.mu.Unlock()
}

// Snippet renders the attributes as they would appear on an HTML root element,
// e.g. `data-accent="green" data-theme="dark-oled"`.
func (r *Root) Snippet() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := ""
	for _, name := range []string{AttrTheme, AttrAccent} {
		v, ok := r.attrs[name]
		if !ok {
			continue
		}

		if s != "" {
			s += " "
		}

		s += name + `="` + v + `"`
	}

	return s
}
