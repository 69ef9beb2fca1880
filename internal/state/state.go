// Package state holds everything loaded from the remote API as an immutable
// snapshot. Mutators return a fresh snapshot and callers swap the whole
// value, so a render in progress never observes a half-applied change.
package state

import "github.com/idilsaglam/todor/internal/model"

// Snapshot groups users and todos by id. The grouping exists purely for the
// O(1) author lookup when rendering a todo row.
type Snapshot struct {
	Users map[int]model.User
	Todos map[int]model.Todo
}

// Empty returns a snapshot with no entities.
func Empty() *Snapshot {
	return &Snapshot{
		Users: map[int]model.User{},
		Todos: map[int]model.Todo{},
	}
}

// Load builds a snapshot from the two startup collections.
func Load(users []model.User, todos []model.Todo) *Snapshot {
	s := &Snapshot{
		Users: make(map[int]model.User, len(users)),
		Todos: make(map[int]model.Todo, len(todos)),
	}
	for _, u := range users {
		s.Users[u.ID] = u
	}
	for _, t := range todos {
		s.Todos[t.ID] = t
	}
	return s
}

func (s *Snapshot) clone() *Snapshot {
	n := &Snapshot{
		Users: make(map[int]model.User, len(s.Users)),
		Todos: make(map[int]model.Todo, len(s.Todos)),
	}
	for id, u := range s.Users {
		n.Users[id] = u
	}
	for id, t := range s.Todos {
		n.Todos[id] = t
	}
	return n
}

// WithTodo returns a copy of s with t inserted or replaced.
func (s *Snapshot) WithTodo(t model.Todo) *Snapshot {
	n := s.clone()
	n.Todos[t.ID] = t
	return n
}

// WithoutTodo returns a copy of s with id dropped.
func (s *Snapshot) WithoutTodo(id int) *Snapshot {
	n := s.clone()
	delete(n.Todos, id)
	return n
}

// Todo looks up a todo by id.
func (s *Snapshot) Todo(id int) (model.Todo, bool) {
	t, ok := s.Todos[id]
	return t, ok
}

// UserName resolves a todo's author name by user id.
func (s *Snapshot) UserName(id int) (string, bool) {
	u, ok := s.Users[id]
	if !ok {
		return "", false
	}
	return u.Name, true
}

// Store owns the current snapshot. It is confined to the UI goroutine; the
// only mutation is a whole-snapshot replacement between messages, and it is
// injected rather than shared as a package global so tests can run isolated.
type Store struct {
	snap *Snapshot
}

// NewStore returns a store holding an empty snapshot.
func NewStore() *Store {
	return &Store{snap: Empty()}
}

// Current returns the snapshot as of the last replacement.
func (st *Store) Current() *Snapshot { return st.snap }

// Replace swaps in a new snapshot.
func (st *Store) Replace(s *Snapshot) { st.snap = s }
