package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hylgeir/tick/internal/todo"
)

// todoItem adapts a todo.Todo to bubbles/list.Item.
type todoItem struct {
	t todo.Todo
}

func (i todoItem) Title() string       { return i.t.Title }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.t.Title }

// itemDelegate renders each todo on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.t.Title
	if it.t.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}
