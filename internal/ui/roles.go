package ui

import "html/template"

// Role is one choice on the role selection screen.
type Role struct {
	ID          string
	Label       string
	Description string
	Href        string
}

// RoleSelector renders the roles as a list of link cards, in order.
type RoleSelector struct {
	Roles    []Role
	Selected string
}

// Render returns the selector markup.
func (s RoleSelector) Render() (template.HTML, error) {
	return render("roles", s)
}
