package model

import "github.com/alldritt/UIBrowser4-sub001/internal/ax"

// Node represents one accessibility element at a specific position in the
// hierarchy snapshot. All description fields are caches: they are composed
// when the node enters the snapshot and mutated in place when the active
// terminology changes. The element handle may go stale (the remote element
// gets destroyed) without the node leaving the snapshot.
type Node struct {
	Element    ax.Element // live (or destroyed) element handle
	ChildCount int        // child count at snapshot time
	IndexPath  IndexPath  // root-to-node sibling indices; len == level+1

	// Display labels for the active terminology.
	BriefDescription  string
	MediumDescription string
	FullDescription   string

	// AppleScript-style labels, cached independently of the active
	// terminology so switching to it is a copy, not a recompute.
	BriefScriptDescription string
	FullScriptDescription  string

	// Inputs the script labels were derived from. The ordinal is assigned
	// once per sibling set and stays stable for the snapshot's lifetime.
	Role          string
	ScriptOrdinal int
}

// Level is the node's zero-based depth in the snapshot.
func (n *Node) Level() int {
	return len(n.IndexPath) - 1
}

// Index is the node's zero-based position among its siblings.
func (n *Node) Index() int {
	if len(n.IndexPath) == 0 {
		return 0
	}
	return n.IndexPath[len(n.IndexPath)-1]
}

// IsZero reports whether the node is the empty sentinel returned by
// accessors for positions that are not materialized yet.
func (n *Node) IsZero() bool {
	return n.Element == nil && len(n.IndexPath) == 0
}

// Row is the one-based position used in display labels.
func (n *Node) Row() int {
	return n.Index() + 1
}
