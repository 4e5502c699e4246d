package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hylgeir/tick/internal/session"
	"github.com/hylgeir/tick/internal/todo"
)

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	if m.confirm != nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, renderConfirm(*m.confirm))
	}

	sections := []string{
		m.list.View(),
		m.chipsRow(),
	}
	if m.notice != "" {
		sections = append(sections, m.noticeLine())
	}
	if m.session.Active() {
		sections = append(sections, m.inputBar())
	}
	return panelStyle.Render(strings.Join(sections, "\n"))
}

// chipsRow renders the All/Active/Completed selector with live counts.
func (m Model) chipsRow() string {
	all := m.store.All()
	chips := []struct {
		label string
		mode  todo.Filter
		count int
	}{
		{"All", todo.FilterAll, len(all)},
		{"Active", todo.FilterActive, len(todo.Visible(all, todo.FilterActive))},
		{"Completed", todo.FilterCompleted, len(todo.Visible(all, todo.FilterCompleted))},
	}

	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		text := fmt.Sprintf("%s %d", c.label, c.count)
		if c.mode == m.filter {
			parts = append(parts, chipActiveStyle.Render(text))
		} else {
			parts = append(parts, chipStyle.Render(text))
		}
	}
	return strings.Join(parts, " ") + "  " + helpStyle.Render("tab: switch")
}

func (m Model) noticeLine() string {
	if m.noticeErr {
		return errorStyle.Render("✖ " + m.notice)
	}
	return successStyle.Render("✔ " + m.notice)
}

func (m Model) inputBar() string {
	title := "Add new item"
	if m.session.State() == session.Editing {
		title = "Edit item"
	}
	return barStyle.Render(title + "\n" + m.input.View())
}
