package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/hylgeir/tick/internal/todo"
)

func init() {
	// Deterministic output regardless of the terminal running the tests.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func renderRow(t *testing.T, item todo.Todo, selected bool) string {
	t.Helper()
	items := []list.Item{todoItem{item}}
	l := list.New(items, itemDelegate{}, 40, 10)
	if !selected {
		// Point the cursor somewhere else so index 0 renders unselected.
		l.SetItems(append(items, todoItem{todo.Todo{ID: "other", Title: "other"}}))
		l.Select(1)
	}

	var b strings.Builder
	itemDelegate{}.Render(&b, l, 0, todoItem{item})
	return ansi.Strip(b.String())
}

func TestDelegateRenderPending(t *testing.T) {
	out := renderRow(t, todo.Todo{ID: "a", Title: "Buy milk", CreatedAt: time.Now()}, false)
	if !strings.Contains(out, boxUnchecked) {
		t.Errorf("pending row missing %q: %q", boxUnchecked, out)
	}
	if !strings.Contains(out, "Buy milk") {
		t.Errorf("row missing title: %q", out)
	}
	if strings.Contains(out, ">") {
		t.Errorf("unselected row has cursor: %q", out)
	}
}

func TestDelegateRenderCompleted(t *testing.T) {
	out := renderRow(t, todo.Todo{ID: "a", Title: "Buy milk", Completed: true, CreatedAt: time.Now()}, false)
	if !strings.Contains(out, boxChecked) {
		t.Errorf("completed row missing %q: %q", boxChecked, out)
	}
}

func TestDelegateRenderSelected(t *testing.T) {
	out := renderRow(t, todo.Todo{ID: "a", Title: "Buy milk", CreatedAt: time.Now()}, true)
	if !strings.HasPrefix(out, ">") {
		t.Errorf("selected row missing cursor: %q", out)
	}
}

func TestDelegateIgnoresForeignItems(t *testing.T) {
	l := list.New(nil, itemDelegate{}, 40, 10)
	var b strings.Builder
	itemDelegate{}.Render(&b, l, 0, nil)
	if b.Len() != 0 {
		t.Errorf("rendered something for a non-todo item: %q", b.String())
	}
}
