package snapshot

import (
	"fmt"
	"strings"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
)

// Placeholder strings used when attributes are missing or a tier does not
// apply. Missing data degrades to something displayable, never an error.
const (
	missingRolePlaceholder = "(missing role attribute)"
	noScriptPlaceholder    = "(no AppleScript support)"
	genericScriptClass     = "UI element"
)

// labelSet holds the three display tiers composed for one node.
type labelSet struct {
	brief  string
	medium string
	full   string
}

// withRowSuffixes derives the medium and full variants from a brief label:
// medium appends the quoted title when present, otherwise the row; full
// always carries the row suffix.
func withRowSuffixes(brief string, el ax.Element, path model.IndexPath) labelSet {
	row := path.Last() + 1
	title, hasTitle := el.Title()
	set := labelSet{brief: brief}
	if hasTitle {
		set.medium = fmt.Sprintf("%s %q", brief, title)
		set.full = fmt.Sprintf("%s %q (row %d)", brief, title, row)
	} else {
		set.medium = fmt.Sprintf("%s (row %d)", brief, row)
		set.full = fmt.Sprintf("%s (row %d)", brief, row)
	}
	return set
}

// rawLabels composes the raw-attribute tier. The subrole attribute, when
// present, is more specific than the role and overrides it. The
// protocol-level (accessibility) scheme always shows the role attribute
// itself.
func rawLabels(el ax.Element, path model.IndexPath, protocolLevel bool) labelSet {
	brief, ok := el.Role()
	if !ok {
		brief = missingRolePlaceholder
	}
	if !protocolLevel {
		if subrole, ok := el.Subrole(); ok {
			brief = subrole
		}
	}
	return withRowSuffixes(brief, el, path)
}

// naturalLabels composes the natural-language tier. Without a
// role-description attribute the element falls back to the raw tier.
func naturalLabels(el ax.Element, path model.IndexPath) labelSet {
	brief, ok := el.RoleDescription()
	if !ok {
		return rawLabels(el, path, false)
	}
	return withRowSuffixes(brief, el, path)
}

// displayClass resolves the AppleScript class name shown for a role.
// Unmapped roles that still carry the accessibility prefix collapse to the
// generic class; other unmapped roles display as themselves.
func displayClass(role string) string {
	if role == "" {
		return genericScriptClass
	}
	class, ok := scriptClasses.className(role)
	if !ok && strings.HasPrefix(class, ax.RolePrefix) {
		return genericScriptClass
	}
	return class
}

// scriptLabels composes the AppleScript tier from the cached role/ordinal
// pair. Application elements use the title-only form; system-wide elements
// have no script identity at all.
func scriptLabels(el ax.Element, role string, ordinal int) (brief, full string) {
	switch role {
	case ax.RoleSystemWide:
		return noScriptPlaceholder, noScriptPlaceholder
	case ax.RoleApplication:
		if title, ok := el.Title(); ok {
			ref := fmt.Sprintf("application %q", title)
			return ref, ref
		}
		return "application", "application"
	}

	brief = fmt.Sprintf("%s %d", displayClass(role), ordinal)
	if title, ok := el.Title(); ok {
		return brief, fmt.Sprintf("%s %q", brief, title)
	}
	return brief, brief
}

// applyTerminology fills the node's display fields from its caches,
// reading the active terminology. AppleScript swaps in the pre-cached
// script labels; the other schemes recompose from the live element and the
// cached index path.
func applyTerminology(n *model.Node, terminology model.Terminology) {
	switch terminology {
	case model.TerminologyAppleScript:
		n.BriefDescription = n.BriefScriptDescription
		n.MediumDescription = n.FullScriptDescription
		n.FullDescription = n.FullScriptDescription
	case model.TerminologyRaw:
		set := rawLabels(n.Element, n.IndexPath, false)
		n.BriefDescription, n.MediumDescription, n.FullDescription = set.brief, set.medium, set.full
	case model.TerminologyAccessibility:
		set := rawLabels(n.Element, n.IndexPath, true)
		n.BriefDescription, n.MediumDescription, n.FullDescription = set.brief, set.medium, set.full
	default:
		set := naturalLabels(n.Element, n.IndexPath)
		n.BriefDescription, n.MediumDescription, n.FullDescription = set.brief, set.medium, set.full
	}
}

// ScriptReference builds a full AppleScript-style reference for a single
// element by walking its live parent chain, e.g.
//
//	button 1 of window "Untitled" of application "TextPad"
//
// This is an on-demand path: it enumerates live siblings for each hop and
// is independent of the cached tree.
func ScriptReference(el ax.Element) string {
	var parts []string
	for cur := el; cur != nil; cur = cur.Parent() {
		role, _ := cur.Role()
		_, full := scriptLabels(cur, role, liveOrdinal(cur))
		parts = append(parts, full)
		if role == ax.RoleApplication || role == ax.RoleSystemWide {
			break
		}
	}
	return strings.Join(parts, " of ")
}

// liveOrdinal recomputes an element's script ordinal from its live sibling
// set. Root elements are ordinal 1 by definition.
func liveOrdinal(el ax.Element) int {
	parent := el.Parent()
	if parent == nil {
		return 1
	}
	siblings := parent.Children()
	ordinals := assignOrdinals(siblings)
	for i, sib := range siblings {
		if sib.Equal(el) {
			return ordinals[i]
		}
	}
	return 1
}
