// Package session tracks the one in-progress create or edit draft.
package session

import (
	"errors"

	"github.com/hylgeir/tick/internal/todo"
)

// ErrNoDraft is returned when Submit is called with no draft in progress.
var ErrNoDraft = errors.New("session: no draft in progress")

// State says what the draft, if any, is for.
type State int

const (
	Idle State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Session holds at most one draft at a time. Starting a new draft
// silently replaces whatever was in progress.
type Session struct {
	state    State
	targetID string
	draft    string
}

func New() *Session {
	return &Session{}
}

func (s *Session) State() State     { return s.state }
func (s *Session) Draft() string    { return s.draft }
func (s *Session) TargetID() string { return s.targetID }

// Active reports whether a draft is in progress.
func (s *Session) Active() bool { return s.state != Idle }

// StartCreate opens an empty draft for a new item.
func (s *Session) StartCreate() {
	s.state = Creating
	s.targetID = ""
	s.draft = ""
}

// StartEdit opens a draft for an existing item, seeded with its title.
func (s *Session) StartEdit(t todo.Todo) {
	s.state = Editing
	s.targetID = t.ID
	s.draft = t.Title
}

// SetDraft records the current input text.
func (s *Session) SetDraft(text string) {
	s.draft = text
}

// Cancel discards the draft without touching the store.
func (s *Session) Cancel() {
	s.reset()
}

// Submit commits the draft to the store. On success the session returns
// to Idle. ErrEmptyTitle keeps the draft open so the user can fix it;
// a stale edit target (ErrNotFound) closes the session, the draft is
// not worth keeping once its item is gone.
func (s *Session) Submit(store *todo.Store) (todo.Todo, error) {
	switch s.state {
	case Creating:
		t, err := store.Create(s.draft)
		if err != nil {
			return todo.Todo{}, err
		}
		s.reset()
		return t, nil
	case Editing:
		t, err := store.UpdateTitle(s.targetID, s.draft)
		if err != nil {
			if errors.Is(err, todo.ErrNotFound) {
				s.reset()
			}
			return todo.Todo{}, err
		}
		s.reset()
		return t, nil
	}
	return todo.Todo{}, ErrNoDraft
}

func (s *Session) reset() {
	s.state = Idle
	s.targetID = ""
	s.draft = ""
}
