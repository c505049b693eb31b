// Package ax defines the accessibility-element capability the snapshot
// store consumes, and a fixture-backed provider used by the demo modes and
// the tests. The store never depends on where elements come from; it only
// sees this interface.
package ax

// Well-known role strings. Real accessibility roles carry the "AX" prefix;
// a role without a human-readable mapping is still displayed, just less
// prettily.
const (
	RolePrefix      = "AX"
	RoleApplication = "AXApplication"
	RoleSystemWide  = "AXSystemWide"
	RoleUnknown     = "AXUnknown"
)

// Element is an opaque handle to one node of a UI accessibility hierarchy.
//
// Attribute getters follow the comma-ok convention: the bool is false when
// the remote element does not carry the attribute at all. A destroyed
// element keeps returning its last-known attributes but reports no
// children.
type Element interface {
	// Role returns the element's role attribute.
	Role() (string, bool)
	// Subrole returns the more specific subrole attribute, if any.
	Subrole() (string, bool)
	// RoleDescription returns the human-readable role description, if any.
	RoleDescription() (string, bool)
	// Title returns the element's title attribute, if any.
	Title() (string, bool)
	// HelpText returns the element's help text, if any.
	HelpText() (string, bool)

	// Children enumerates the element's children in native order.
	// Destroyed elements report none.
	Children() []Element
	// Parent returns the containing element, or nil at the root.
	Parent() Element

	// Destroyed reports whether the remote element has been invalidated.
	Destroyed() bool

	// ID is a stable identity token for the element.
	ID() uint64
	// Equal reports whether two handles refer to the same element.
	Equal(Element) bool
}
