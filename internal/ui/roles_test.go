package ui

import (
	"strings"
	"testing"
)

func testRoles() []Role {
	return []Role{
		{ID: "visitor", Label: "Visitor", Description: "Browse", Href: "/calendar?role=visitor"},
		{ID: "student", Label: "Student", Href: "/calendar?role=student"},
		{ID: "teacher", Label: "Teacher", Href: "/calendar?role=teacher"},
	}
}

func TestRoleSelector_Order(t *testing.T) {
	got, err := RoleSelector{Roles: testRoles()}.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	s := string(got)
	iv, is, it := strings.Index(s, "Visitor"), strings.Index(s, "Student"), strings.Index(s, "Teacher")
	if iv < 0 || is < 0 || it < 0 || !(iv < is && is < it) {
		t.Errorf("roles out of order: %s", s)
	}
	if strings.Count(s, "<li>") != 3 {
		t.Errorf("expected 3 items: %s", s)
	}
	if strings.Contains(s, "aria-current") {
		t.Errorf("nothing selected, got aria-current: %s", s)
	}
}

func TestRoleSelector_Selected(t *testing.T) {
	got, err := RoleSelector{Roles: testRoles(), Selected: "student"}.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	s := string(got)
	if strings.Count(s, `aria-current="true"`) != 1 {
		t.Errorf("expected exactly one selected role: %s", s)
	}
	if !strings.Contains(s, `class="role-card selected" href="/calendar?role=student" aria-current="true"`) {
		t.Errorf("student should be selected: %s", s)
	}
}

func TestRoleSelector_DescriptionOptional(t *testing.T) {
	got, err := RoleSelector{Roles: testRoles()}.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if n := strings.Count(string(got), "role-description"); n != 1 {
		t.Errorf("got %d descriptions, want 1", n)
	}
}
