// Package registry provides named storage of templates, keyed by template id.
package registry

import (
	"sort"
	"sync"

	"github.com/yejunhao159/promptstack/pkg/templates"
)

// Manager maps template ids to Template instances. Host applications create
// one at startup and register their templates before composing; tests may
// instantiate isolated managers instead of sharing one.
//
// Manager is safe for concurrent use. Registering under an id that already
// exists overwrites the earlier entry.
type Manager struct {
	mu        sync.RWMutex
	templates map[string]templates.Template
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{templates: make(map[string]templates.Template)}
}

// Register stores the template under its own id, replacing any previous
// entry with the same id.
func (m *Manager) Register(t templates.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.ID()] = t
}

// Get returns the template registered under id, or false if there is none.
func (m *Manager) Get(id string) (templates.Template, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.templates[id]
	return t, ok
}

// Has reports whether a template is registered under id.
func (m *Manager) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.templates[id]
	return ok
}

// List returns a snapshot of all registered templates' metadata, sorted by
// id so repeated calls on an unmodified manager agree.
func (m *Manager) List() []templates.Metadata {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metas := make([]templates.Metadata, 0, len(m.templates))
	for _, t := range m.templates {
		metas = append(metas, templates.Metadata{
			ID:          t.ID(),
			Name:        t.Name(),
			Description: t.Description(),
		})
	}

	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })

	return metas
}

// Unregister removes the template registered under id and reports whether an
// entry existed.
func (m *Manager) Unregister(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.templates[id]
	delete(m.templates, id)

	return ok
}

// Clear empties the manager. Intended for test isolation.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates = make(map[string]templates.Template)
}

// Len returns the number of registered templates.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.templates)
}
