// Package report renders non-interactive views of an element hierarchy:
// an ascii outline of the full tree and a per-level description listing of
// a loaded snapshot.
package report

import (
	"fmt"
	"strings"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
)

type outlineNode struct {
	Label    string        `asciitree:"label"`
	Props    []string      `asciitree:"properties"`
	Children []outlineNode `asciitree:"children"`
}

func convertElement(el ax.Element) outlineNode {
	role, _ := el.Role()
	label := role
	if title, ok := el.Title(); ok {
		label = fmt.Sprintf("%s %q", role, title)
	}

	var props []string
	if subrole, ok := el.Subrole(); ok {
		props = append(props, "subrole: "+subrole)
	}
	if desc, ok := el.RoleDescription(); ok {
		props = append(props, "description: "+desc)
	}
	if help, ok := el.HelpText(); ok {
		props = append(props, "help: "+help)
	}

	var children []outlineNode
	for _, child := range el.Children() {
		children = append(children, convertElement(child))
	}
	return outlineNode{Label: label, Props: props, Children: children}
}

// Outline renders the complete element hierarchy as an ascii tree.
func Outline(el ax.Element) string {
	return asciitree.RenderFancy(convertElement(el))
}

// Describe renders the loaded snapshot level by level: every cached
// sibling with its display and script labels, the current selection
// marked. Verbose adds index paths, child counts and destroyed flags.
func Describe(store *snapshot.Store, verbose bool) string {
	var b strings.Builder

	if store.IsEmpty() {
		b.WriteString("No target loaded.\n")
		return b.String()
	}

	selected := store.SelectedNode()
	b.WriteString("Current path: ")
	var crumbs []string
	for _, n := range store.Current() {
		crumbs = append(crumbs, n.BriefDescription)
	}
	b.WriteString(strings.Join(crumbs, " ▸ "))
	b.WriteString("\n\n")

	for level := 0; level < store.Depth(); level++ {
		fmt.Fprintf(&b, "Level %d (%d siblings)\n", level, store.NodeCount(level))
		for _, n := range store.NodesAt(level) {
			marker := "  "
			if n == selected {
				marker = "▶ "
			}
			fmt.Fprintf(&b, "  %s%s\n", marker, n.FullDescription)
			fmt.Fprintf(&b, "      script: %s\n", n.FullScriptDescription)
			if verbose {
				fmt.Fprintf(&b, "      path: %s  children: %d", n.IndexPath, n.ChildCount)
				if n.Element != nil && n.Element.Destroyed() {
					b.WriteString("  [destroyed]")
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if selected != nil && selected.Element != nil {
		fmt.Fprintf(&b, "Selected reference: %s\n", snapshot.ScriptReference(selected.Element))
	}
	return b.String()
}
