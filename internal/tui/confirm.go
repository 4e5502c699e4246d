package tui

import "fmt"

// Destructive operations go through a confirmation prompt; the store
// mutation runs only after an explicit yes.
type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmClear
)

type confirmPrompt struct {
	action confirmAction
	id     string // delete target
	title  string // delete target title, shown in the prompt
	count  int    // completed count for clear
}

func renderConfirm(p confirmPrompt) string {
	var heading, body string
	switch p.action {
	case confirmDelete:
		heading = "Delete item"
		body = fmt.Sprintf("Delete %q?", p.title)
	case confirmClear:
		heading = "Clear completed"
		body = fmt.Sprintf("Remove %d completed item(s)?", p.count)
	}
	help := mutedStyle.Render("enter/y: confirm   esc/n: cancel")
	return modalStyle.Render(titleStyle.Render(heading) + "\n\n" + body + "\n\n" + help)
}
