package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todor/internal/model"
	"github.com/idilsaglam/todor/internal/state"
)

func sampleSnapshot() *state.Snapshot {
	return state.Load(
		[]model.User{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Ben"}},
		[]model.Todo{
			{ID: 10, UserID: 1, Title: "Buy milk", Completed: false},
			{ID: 20, UserID: 2, Title: "Wash car", Completed: true},
		},
	)
}

func TestLoadGroupsByID(t *testing.T) {
	s := sampleSnapshot()

	assert.Len(t, s.Users, 2)
	assert.Len(t, s.Todos, 2)

	todo, ok := s.Todo(10)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", todo.Title)

	name, ok := s.UserName(1)
	require.True(t, ok)
	assert.Equal(t, "Ann", name)

	_, ok = s.UserName(99)
	assert.False(t, ok)
}

func TestWithTodoInsertsAndReplaces(t *testing.T) {
	s := sampleSnapshot()

	inserted := s.WithTodo(model.Todo{ID: 30, UserID: 1, Title: "Call mom"})
	assert.Len(t, inserted.Todos, 3)

	toggled := inserted.WithTodo(model.Todo{ID: 10, UserID: 1, Title: "Buy milk", Completed: true})
	assert.Len(t, toggled.Todos, 3)
	todo, _ := toggled.Todo(10)
	assert.True(t, todo.Completed)
}

func TestWithoutTodoDropsExactlyOne(t *testing.T) {
	s := sampleSnapshot()

	left := s.WithoutTodo(10)
	assert.Len(t, left.Todos, 1)
	_, ok := left.Todo(10)
	assert.False(t, ok)
	_, ok = left.Todo(20)
	assert.True(t, ok)

	// removing an absent id is a no-op
	same := left.WithoutTodo(999)
	assert.Len(t, same.Todos, 1)
}

func TestMutatorsLeaveOriginalUntouched(t *testing.T) {
	s := sampleSnapshot()

	_ = s.WithTodo(model.Todo{ID: 10, UserID: 1, Title: "Buy milk", Completed: true})
	_ = s.WithoutTodo(20)

	todo, _ := s.Todo(10)
	assert.False(t, todo.Completed)
	_, ok := s.Todo(20)
	assert.True(t, ok)
}

func TestStoreReplacesWholeSnapshot(t *testing.T) {
	st := state.NewStore()
	assert.Empty(t, st.Current().Todos)

	first := sampleSnapshot()
	st.Replace(first)
	assert.Same(t, first, st.Current())

	second := first.WithoutTodo(10)
	st.Replace(second)
	assert.Same(t, second, st.Current())
	assert.Len(t, first.Todos, 2)
}
