package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hylgeir/tick/internal/todo"
)

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// Any keypress dismisses the previous notice.
		m.notice = ""
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.session.Active() {
			return m.updateDraft(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	chrome := 6 // panel border, chips row, notice line
	if m.session.Active() {
		chrome += 3 // input bar
	}
	m.list.SetSize(m.width-4, max(m.height-chrome, 1))
	m.input.Width = max(m.width-10, 10)
}

// confirm prompt is up: only yes or no.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		prompt := *m.confirm
		m.confirm = nil
		switch prompt.action {
		case confirmDelete:
			if err := m.store.Delete(prompt.id); err != nil {
				m.setError("item no longer exists")
				m.logger.Warn("delete failed", "id", prompt.id, "err", err)
			} else {
				m.setNotice("deleted")
				m.logger.Debug("deleted", "id", prompt.id)
			}
		case confirmClear:
			n := m.store.ClearCompleted()
			m.setNotice(fmt.Sprintf("cleared %d", n))
			m.logger.Debug("cleared completed", "count", n)
		}
		m.refresh()
		return m, nil
	case "esc", "n":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

// a draft is open: keys go to the text input.
func (m Model) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.SetDraft(m.input.Value())
		if _, err := m.session.Submit(m.store); err != nil {
			switch {
			case errors.Is(err, todo.ErrEmptyTitle):
				// Keep the input open so the user can fix it.
				m.setError("Title cannot be empty")
			case errors.Is(err, todo.ErrNotFound):
				m.setError("item no longer exists")
				m.closeInput()
				m.refresh()
			default:
				m.setError(err.Error())
				m.closeInput()
			}
			m.resize()
			return m, nil
		}
		m.closeInput()
		m.refresh()
		m.resize()
		return m, nil
	case "esc":
		m.session.Cancel()
		m.closeInput()
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Add):
		m.session.StartCreate()
		m.openInput("New item title...", "")
		m.resize()
		return m, nil

	case key.Matches(msg, keys.Edit):
		if t, ok := m.selectedTodo(); ok {
			m.session.StartEdit(t)
			m.openInput("Edit item title...", t.Title)
			m.resize()
		}
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if t, ok := m.selectedTodo(); ok {
			if _, err := m.store.ToggleCompleted(t.ID); err != nil {
				m.setError("item no longer exists")
				m.logger.Warn("toggle failed", "id", t.ID, "err", err)
			}
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, keys.Delete):
		if t, ok := m.selectedTodo(); ok {
			m.confirm = &confirmPrompt{action: confirmDelete, id: t.ID, title: t.Title}
		}
		return m, nil

	case key.Matches(msg, keys.Clear):
		if n := m.completedCount(); n > 0 {
			m.confirm = &confirmPrompt{action: confirmClear, count: n}
		} else {
			m.setNotice("nothing to clear")
		}
		return m, nil

	case key.Matches(msg, keys.Filter):
		m.filter = m.filter.Next()
		m.refresh()
		return m, nil
	}

	switch msg.String() {
	case "1":
		m.filter = todo.FilterAll
		m.refresh()
		return m, nil
	case "2":
		m.filter = todo.FilterActive
		m.refresh()
		return m, nil
	case "3":
		m.filter = todo.FilterCompleted
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}
