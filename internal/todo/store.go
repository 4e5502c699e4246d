package todo

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyTitle is returned when a title trims to the empty string.
	ErrEmptyTitle = errors.New("todo: empty title")
	// ErrNotFound is returned when no item with the given id exists.
	ErrNotFound = errors.New("todo: item not found")
)

// Store holds the ordered collection, newest first. It is the only
// mutator of the collection; there is exactly one caller (the UI event
// loop), so no locking.
type Store struct {
	items []Todo
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Create trims title and prepends a new pending item.
func (s *Store) Create(title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}
	t := Todo{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
	}
	s.items = slices.Insert(s.items, 0, t)
	return t, nil
}

// UpdateTitle replaces the title of the item with the given id. The
// item keeps its position in the collection.
func (s *Store) UpdateTitle(id, title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}
	i := s.index(id)
	if i < 0 {
		return Todo{}, ErrNotFound
	}
	s.items[i].Title = title
	s.items[i].UpdatedAt = s.touch()
	return s.items[i], nil
}

// ToggleCompleted flips the completion flag of the item with the given id.
func (s *Store) ToggleCompleted(id string) (Todo, error) {
	i := s.index(id)
	if i < 0 {
		return Todo{}, ErrNotFound
	}
	s.items[i].Completed = !s.items[i].Completed
	s.items[i].UpdatedAt = s.touch()
	return s.items[i], nil
}

// Delete removes the item with the given id, keeping the rest in order.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// ClearCompleted removes every completed item and reports how many were
// removed. Zero is a valid no-op, not an error.
func (s *Store) ClearCompleted() int {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(t Todo) bool { return t.Completed })
	return before - len(s.items)
}

// All returns a copy of the collection, newest first.
func (s *Store) All() []Todo {
	return slices.Clone(s.items)
}

// Get looks up a single item by id.
func (s *Store) Get(id string) (Todo, bool) {
	i := s.index(id)
	if i < 0 {
		return Todo{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(t Todo) bool { return t.ID == id })
}

func (s *Store) touch() *time.Time {
	t := s.now()
	return &t
}
