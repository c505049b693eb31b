package ax

import "testing"

const fixture = `
role: AXApplication
roledescription: application
title: Demo
children:
  - role: AXWindow
    title: Main
    children:
      - role: AXButton
        title: OK
        help: Confirms the dialog
  - role: AXMenuBar
`

func TestParseFixture(t *testing.T) {
	app, err := ParseFixture([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}

	if role, ok := app.Role(); !ok || role != RoleApplication {
		t.Errorf("root role = %q, want %q", role, RoleApplication)
	}
	if app.Parent() != nil {
		t.Error("root should have no parent")
	}

	children := app.Children()
	if len(children) != 2 {
		t.Fatalf("root has %d children, want 2", len(children))
	}

	window := children[0]
	if title, ok := window.Title(); !ok || title != "Main" {
		t.Errorf("window title = %q, want Main", title)
	}
	if !window.Parent().Equal(app) {
		t.Error("window's parent should be the application")
	}

	button := window.Children()[0]
	if help, ok := button.HelpText(); !ok || help != "Confirms the dialog" {
		t.Errorf("button help = %q", help)
	}
	if _, ok := button.Subrole(); ok {
		t.Error("button should have no subrole")
	}
}

func TestParseFixtureErrors(t *testing.T) {
	if _, err := ParseFixture([]byte("{not yaml")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := ParseFixture([]byte("title: no role here\n")); err == nil {
		t.Error("a fixture without a root role should fail")
	}
}

func TestStableIdentity(t *testing.T) {
	a, err := ParseFixture([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	b, err := ParseFixture([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}

	// Reloading the same fixture yields the same identity tokens but
	// distinct handles.
	if a.ID() != b.ID() {
		t.Errorf("root IDs differ across reloads: %d != %d", a.ID(), b.ID())
	}
	if a.Equal(b) {
		t.Error("distinct handles must not compare equal")
	}
	if !a.Equal(a) {
		t.Error("a handle must compare equal to itself")
	}
	if a.Children()[0].ID() == a.Children()[1].ID() {
		t.Error("sibling IDs should differ")
	}
}

func TestDestroy(t *testing.T) {
	app, err := ParseFixture([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	window := app.Children()[0].(*StaticElement)
	button := window.Children()[0]

	window.Destroy()

	if !window.Destroyed() {
		t.Error("window should report destroyed")
	}
	if !button.Destroyed() {
		t.Error("destruction should cover the subtree")
	}
	if window.Children() != nil {
		t.Error("a destroyed element should report no children")
	}
	// Last-known attributes stay readable.
	if title, ok := window.Title(); !ok || title != "Main" {
		t.Errorf("destroyed window title = %q, want Main", title)
	}
	if app.Destroyed() {
		t.Error("the parent should be unaffected")
	}
}

func TestDemoAndSystemWide(t *testing.T) {
	demo := DemoApplication()
	if role, _ := demo.Role(); role != RoleApplication {
		t.Errorf("demo role = %q, want %q", role, RoleApplication)
	}
	if len(demo.Children()) == 0 {
		t.Error("demo application should have children")
	}

	sw := SystemWide()
	if role, _ := sw.Role(); role != RoleSystemWide {
		t.Errorf("system-wide role = %q, want %q", role, RoleSystemWide)
	}
	if len(sw.Children()) != 0 {
		t.Error("system-wide element should have no children")
	}
}
