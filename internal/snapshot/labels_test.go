package snapshot

import (
	"testing"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
)

const labelFixture = `
role: AXApplication
roledescription: application
title: TextPad
children:
  - role: AXButton
    roledescription: button
    title: Save
  - role: AXButton
    subrole: AXCloseButton
    roledescription: close button
  - role: AXCustomWidget
    title: Gadget
`

func labelApp(t *testing.T) *ax.StaticElement {
	t.Helper()
	el, err := ax.ParseFixture([]byte(labelFixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	return el
}

func TestNaturalLabels(t *testing.T) {
	app := labelApp(t)
	children := app.Children()

	tests := []struct {
		name   string
		el     ax.Element
		path   model.IndexPath
		brief  string
		medium string
		full   string
	}{
		{
			name:  "titled element",
			el:    children[0],
			path:  model.IndexPath{0, 0},
			brief: "button", medium: `button "Save"`, full: `button "Save" (row 1)`,
		},
		{
			name:  "untitled element falls back to the row",
			el:    children[1],
			path:  model.IndexPath{0, 1},
			brief: "close button", medium: "close button (row 2)", full: "close button (row 2)",
		},
		{
			name:  "no role description falls back to the raw tier",
			el:    children[2],
			path:  model.IndexPath{0, 2},
			brief: "AXCustomWidget", medium: `AXCustomWidget "Gadget"`, full: `AXCustomWidget "Gadget" (row 3)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := naturalLabels(tt.el, tt.path)
			if set.brief != tt.brief || set.medium != tt.medium || set.full != tt.full {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)",
					set.brief, set.medium, set.full, tt.brief, tt.medium, tt.full)
			}
		})
	}
}

func TestRawLabels(t *testing.T) {
	app := labelApp(t)
	closeButton := app.Children()[1]

	// Raw: the subrole overrides the role.
	set := rawLabels(closeButton, model.IndexPath{0, 1}, false)
	if set.brief != "AXCloseButton" {
		t.Errorf("raw brief = %q, want AXCloseButton", set.brief)
	}

	// Accessibility: the protocol-level role attribute itself.
	set = rawLabels(closeButton, model.IndexPath{0, 1}, true)
	if set.brief != "AXButton" {
		t.Errorf("accessibility brief = %q, want AXButton", set.brief)
	}
}

func TestRawLabelsMissingRole(t *testing.T) {
	// A role-less element cannot come out of a fixture (the loader insists
	// on a root role), so exercise the tier through a bare struct value.
	set := rawLabels(roleless{}, model.IndexPath{0, 0}, false)
	if set.brief != missingRolePlaceholder {
		t.Errorf("brief = %q, want the missing-role placeholder", set.brief)
	}
}

// roleless is an element with no attributes at all.
type roleless struct{}

func (roleless) Role() (string, bool)            { return "", false }
func (roleless) Subrole() (string, bool)         { return "", false }
func (roleless) RoleDescription() (string, bool) { return "", false }
func (roleless) Title() (string, bool)           { return "", false }
func (roleless) HelpText() (string, bool)        { return "", false }
func (roleless) Children() []ax.Element          { return nil }
func (roleless) Parent() ax.Element              { return nil }
func (roleless) Destroyed() bool                 { return false }
func (roleless) ID() uint64                      { return 0 }
func (roleless) Equal(other ax.Element) bool     { _, ok := other.(roleless); return ok }

func TestScriptLabels(t *testing.T) {
	app := labelApp(t)
	children := app.Children()

	brief, full := scriptLabels(app, ax.RoleApplication, 1)
	if brief != `application "TextPad"` || full != `application "TextPad"` {
		t.Errorf("application form = (%q, %q)", brief, full)
	}

	brief, full = scriptLabels(children[0], "AXButton", 2)
	if brief != "button 2" {
		t.Errorf("brief = %q, want %q", brief, "button 2")
	}
	if full != `button 2 "Save"` {
		t.Errorf("full = %q, want %q", full, `button 2 "Save"`)
	}

	brief, _ = scriptLabels(children[2], "AXCustomWidget", 3)
	if brief != "UI element 3" {
		t.Errorf("unmapped AX role brief = %q, want %q", brief, "UI element 3")
	}

	brief, full = scriptLabels(ax.SystemWide(), ax.RoleSystemWide, 1)
	if brief != noScriptPlaceholder || full != noScriptPlaceholder {
		t.Errorf("system-wide form = (%q, %q), want the placeholder", brief, full)
	}
}

func TestDisplayClass(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"AXButton", "button"},
		{"AXMenuBarItem", "menu bar item"},
		{"AXNoSuchRole", genericScriptClass},
		{"WebWidget", "WebWidget"}, // non-AX custom role shows as itself
	}
	for _, tt := range tests {
		if got := displayClass(tt.role); got != tt.want {
			t.Errorf("displayClass(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestScriptReference(t *testing.T) {
	el, err := ax.ParseFixture([]byte(`
role: AXApplication
title: TextPad
children:
  - role: AXWindow
    title: Untitled
    children:
      - role: AXButton
      - role: AXButton
        title: Print
`))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}

	print := el.Children()[0].Children()[1]
	want := `button 2 "Print" of window 1 "Untitled" of application "TextPad"`
	if got := ScriptReference(print); got != want {
		t.Errorf("ScriptReference = %q, want %q", got, want)
	}
}

func TestTableError(t *testing.T) {
	// The embedded table ships with the binary and must always parse.
	if err := TableError(); err != nil {
		t.Errorf("TableError = %v, want nil", err)
	}
}
