// Package tui is the Bubble Tea presentation layer. It owns no todo
// state: after every mutation it re-reads the store and rebuilds the
// visible list.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/hylgeir/tick/internal/session"
	"github.com/hylgeir/tick/internal/todo"
)

type Model struct {
	store   *todo.Store
	session *session.Session
	filter  todo.Filter

	list    list.Model
	input   textinput.Model
	confirm *confirmPrompt // non-nil while a prompt is up

	notice    string
	noticeErr bool

	logger *log.Logger

	width, height int
}

func New(store *todo.Store, filter todo.Filter, logger *log.Logger) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// Free-text filtering is out; the All/Active/Completed chips are
	// the only subset view.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.AdditionalShortHelpKeys = func() []key.Binding { return keys.bindings() }
	l.AdditionalFullHelpKeys = func() []key.Binding { return keys.bindings() }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store:   store,
		session: session.New(),
		filter:  filter,
		list:    l,
		input:   ti,
		logger:  logger,
	}
	m.refresh()
	return m
}

// refresh rebuilds the visible list from the store. Called after every
// mutation and filter change.
func (m *Model) refresh() {
	visible := todo.Visible(m.store.All(), m.filter)
	li := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		li = append(li, todoItem{t})
	}
	m.list.SetItems(li)
	m.list.Title = headerTitle(m.store.All())
	if idx := m.list.Index(); idx >= len(li) && len(li) > 0 {
		m.list.Select(len(li) - 1)
	}
}

func (m *Model) selectedTodo() (todo.Todo, bool) {
	it, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return todo.Todo{}, false
	}
	return it.t, true
}

func (m *Model) completedCount() int {
	return len(todo.Visible(m.store.All(), todo.FilterCompleted))
}

func (m *Model) setNotice(msg string) {
	m.notice = msg
	m.noticeErr = false
}

func (m *Model) setError(msg string) {
	m.notice = msg
	m.noticeErr = true
}

func (m *Model) openInput(placeholder, value string) {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.input.SetValue("")
	m.input.Blur()
}

// Header with live counts, like: Todos   ✔ 2  • 3  Total 5
func headerTitle(items []todo.Todo) string {
	var done int
	for _, t := range items {
		if t.Completed {
			done++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(items)-done,
		accentStyle.Render("Total"), len(items),
	)
}
