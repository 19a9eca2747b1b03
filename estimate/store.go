package estimate

import (
	"sync"

	"avestimator/services"
)

// Store keeps one View per project id for the life of the process. Nothing
// is written to disk; a restart starts every estimate over.
//
// Updates are serialised so two requests for the same project never
// interleave, and readers always get a complete snapshot.
type Store struct {
	mu     sync.Mutex
	tables *services.ReferenceTables
	views  map[string]View
}

func NewStore(tables *services.ReferenceTables) *Store {
	return &Store{
		tables: tables,
		views:  make(map[string]View),
	}
}

func (s *Store) Tables() *services.ReferenceTables { return s.tables }

// View returns the current view for project, creating it on first use.
func (s *Store) View(project services.ProjectInfo) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(project)
}

// Update applies fn to the project's view and stores the result.
func (s *Store) Update(project services.ProjectInfo, fn func(View) View) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.viewLocked(project))
	s.views[project.ID] = next
	return next
}

// Forget drops a project's view.
func (s *Store) Forget(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, projectID)
}

func (s *Store) viewLocked(project services.ProjectInfo) View {
	v, ok := s.views[project.ID]
	if !ok {
		v = NewView(s.tables, project)
		s.views[project.ID] = v
	}
	return v
}
