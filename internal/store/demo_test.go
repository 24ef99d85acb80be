package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoStoreCreateAndList(t *testing.T) {
	s := NewDemoTaskStore()

	first := s.Create("buy milk")
	second := s.Create("walk dog")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.Completed)

	tasks := s.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, "buy milk", tasks[0].Title)
	assert.Equal(t, "walk dog", tasks[1].Title)
}

func TestDemoStoreGet(t *testing.T) {
	s := NewDemoTaskStore()
	created := s.Create("buy milk")

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDemoStorePartialUpdate(t *testing.T) {
	s := NewDemoTaskStore()
	created := s.Create("buy milk")

	completed := true
	updated, err := s.Update(created.ID, nil, &completed)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)

	title := "buy oat milk"
	updated, err = s.Update(created.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Title)
	assert.True(t, updated.Completed)

	_, err = s.Update(999, &title, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDemoStoreDeleteTwice(t *testing.T) {
	s := NewDemoTaskStore()
	created := s.Create("buy milk")

	require.NoError(t, s.Delete(created.ID))
	assert.ErrorIs(t, s.Delete(created.ID), ErrNotFound)
}

func TestDemoStoreDeleteAll(t *testing.T) {
	s := NewDemoTaskStore()
	s.Create("one")
	s.Create("two")

	s.DeleteAll()
	assert.Empty(t, s.List())

	// The id counter keeps advancing after a clear.
	next := s.Create("three")
	assert.Equal(t, 3, next.ID)
}
