package ax

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// elementSpec is the YAML shape of one element in a fixture file.
type elementSpec struct {
	Role            string        `yaml:"role"`
	Subrole         string        `yaml:"subrole,omitempty"`
	RoleDescription string        `yaml:"roledescription,omitempty"`
	Title           string        `yaml:"title,omitempty"`
	Help            string        `yaml:"help,omitempty"`
	Children        []elementSpec `yaml:"children,omitempty"`
}

// StaticElement is a fixture-backed Element. The whole tree is built up
// front at load time; Destroy simulates the remote process invalidating an
// element.
type StaticElement struct {
	role            string
	subrole         string
	roleDescription string
	title           string
	help            string

	parent    *StaticElement
	children  []*StaticElement
	destroyed bool
	id        uint64
}

var _ Element = (*StaticElement)(nil)

func attr(s string) (string, bool) { return s, s != "" }

func (e *StaticElement) Role() (string, bool)            { return attr(e.role) }
func (e *StaticElement) Subrole() (string, bool)         { return attr(e.subrole) }
func (e *StaticElement) RoleDescription() (string, bool) { return attr(e.roleDescription) }
func (e *StaticElement) Title() (string, bool)           { return attr(e.title) }
func (e *StaticElement) HelpText() (string, bool)        { return attr(e.help) }

func (e *StaticElement) Children() []Element {
	if e.destroyed {
		return nil
	}
	out := make([]Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *StaticElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *StaticElement) Destroyed() bool { return e.destroyed }

func (e *StaticElement) ID() uint64 { return e.id }

func (e *StaticElement) Equal(other Element) bool {
	o, ok := other.(*StaticElement)
	return ok && o == e
}

// Destroy marks the element and its whole subtree invalid. Attributes stay
// readable (last-known values) but children disappear, matching how a dead
// remote element behaves.
func (e *StaticElement) Destroy() {
	e.destroyed = true
	for _, c := range e.children {
		c.Destroy()
	}
}

// build wires parent links and identity tokens. The identity hash covers
// the tree position plus the attributes, so reloading the same fixture
// yields the same IDs.
func build(spec elementSpec, parent *StaticElement, pos string) *StaticElement {
	h := xxhash.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", pos, spec.Role, spec.Subrole, spec.Title)

	e := &StaticElement{
		role:            spec.Role,
		subrole:         spec.Subrole,
		roleDescription: spec.RoleDescription,
		title:           spec.Title,
		help:            spec.Help,
		parent:          parent,
		id:              h.Sum64(),
	}
	for i, child := range spec.Children {
		e.children = append(e.children, build(child, e, fmt.Sprintf("%s.%d", pos, i)))
	}
	return e
}

// LoadFixture reads a YAML element-tree fixture from disk.
func LoadFixture(path string) (*StaticElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture builds an element tree from YAML fixture bytes.
func ParseFixture(data []byte) (*StaticElement, error) {
	var spec elementSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}
	if spec.Role == "" {
		return nil, fmt.Errorf("fixture root has no role")
	}
	return build(spec, nil, "0"), nil
}

//go:embed demo.yaml
var demoFixture []byte

// DemoApplication returns the embedded demo application hierarchy. It is
// the default browse target when no fixture file is given.
func DemoApplication() *StaticElement {
	el, err := ParseFixture(demoFixture)
	if err != nil {
		// The embedded fixture ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return el
}

// SystemWide returns a system-wide element: no children, no script
// identity, just a place to hang attribute inspection off.
func SystemWide() *StaticElement {
	return build(elementSpec{
		Role:            RoleSystemWide,
		RoleDescription: "system wide",
	}, nil, "sw")
}
