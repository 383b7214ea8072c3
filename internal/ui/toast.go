package ui

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// Toast variants.
const (
	ToastDefault     = "default"
	ToastSuccess     = "success"
	ToastDestructive = "destructive"
)

// markdown renders toast descriptions. Raw HTML in the source is dropped.
var markdown = goldmark.New()

// Toast is a notification box. It has no timers or stacking; whoever
// renders the page decides whether it is open.
type Toast struct {
	Open        bool
	Variant     string
	Title       string
	Description string // Markdown
	Action      string
	ActionHref  string
}

type toastView struct {
	Open        bool
	Variant     string
	Title       string
	Description template.HTML
	Action      string
	ActionHref  string
}

// Render returns the toast markup, or nothing when the toast is closed.
func (t Toast) Render() (template.HTML, error) {
	if !t.Open {
		return "", nil
	}

	v := toastView{
		Open:       true,
		Variant:    t.Variant,
		Title:      t.Title,
		Action:     t.Action,
		ActionHref: t.ActionHref,
	}
	if v.Variant == "" {
		v.Variant = ToastDefault
	}

	if desc := strings.TrimSpace(t.Description); desc != "" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(desc), &buf); err != nil {
			return "", err
		}
		v.Description = template.HTML(strings.TrimSpace(buf.String()))
	}

	return render("toast", v)
}
