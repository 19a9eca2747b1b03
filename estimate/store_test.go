package estimate

import (
	"sync"
	"testing"

	"avestimator/services"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	tables, err := services.DefaultReferenceTables()
	if err != nil {
		t.Fatalf("DefaultReferenceTables() error = %v", err)
	}
	return NewStore(tables)
}

func TestStore_CreatesViewOnFirstUse(t *testing.T) {
	s := newTestStore(t)
	p := services.ProjectInfo{ID: "7", Project: "Lobby"}

	v := s.View(p)
	if v.Project() != p || len(v.Rooms()) != 1 {
		t.Errorf("first view = project %+v rooms %d", v.Project(), len(v.Rooms()))
	}
	if s.Tables() == nil {
		t.Error("Tables() = nil")
	}
}

func TestStore_UpdatePersists(t *testing.T) {
	s := newTestStore(t)
	p := services.ProjectInfo{ID: "7"}

	s.Update(p, func(v View) View {
		v, _ = v.AddRoom("Second")
		return v
	})
	if got := len(s.View(p).Rooms()); got != 2 {
		t.Errorf("rooms after update = %d, want 2", got)
	}

	other := services.ProjectInfo{ID: "8"}
	if got := len(s.View(other).Rooms()); got != 1 {
		t.Errorf("other project rooms = %d, want 1", got)
	}

	s.Forget(p.ID)
	if got := len(s.View(p).Rooms()); got != 1 {
		t.Errorf("rooms after forget = %d, want 1", got)
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := newTestStore(t)
	p := services.ProjectInfo{ID: "1"}

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(p, func(v View) View {
				v, _ = v.AddRoom("Room")
				return v
			})
		}()
	}
	wg.Wait()

	rooms := s.View(p).Rooms()
	if len(rooms) != workers+1 {
		t.Fatalf("rooms = %d, want %d", len(rooms), workers+1)
	}
	seen := make(map[string]bool)
	for _, r := range rooms {
		if seen[r.ID] {
			t.Errorf("duplicate room id %q", r.ID)
		}
		seen[r.ID] = true
	}
}
