package model

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexPath locates a node in the snapshot: one sibling index per level,
// from the root down. A path of length L addresses a node at level L-1.
type IndexPath []int

// Clone returns an independent copy. Nodes must never share backing arrays,
// otherwise appending a child index to one path would scribble on another.
func (p IndexPath) Clone() IndexPath {
	if p == nil {
		return nil
	}
	q := make(IndexPath, len(p))
	copy(q, p)
	return q
}

// Child returns a new path addressing the i-th child of the node at p.
func (p IndexPath) Child(i int) IndexPath {
	q := make(IndexPath, len(p)+1)
	copy(q, p)
	q[len(p)] = i
	return q
}

// Last returns the final component (the node's index among its siblings).
func (p IndexPath) Last() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Equal reports whether two paths address the same position.
func (p IndexPath) Equal(q IndexPath) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders the path as dot-separated indices, e.g. "0.2.1".
func (p IndexPath) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// ParseIndexPath parses the dot-separated form produced by String.
func ParseIndexPath(s string) (IndexPath, error) {
	if s == "" {
		return nil, fmt.Errorf("empty index path")
	}
	parts := strings.Split(s, ".")
	p := make(IndexPath, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad index path component %q", part)
		}
		p[i] = n
	}
	return p, nil
}
