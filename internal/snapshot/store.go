// Package snapshot maintains the in-memory snapshot of a target's
// accessibility hierarchy: a column of siblings per level, the selected
// root-to-node path, cached display labels per terminology, and a saved
// path mark for preview-then-commit navigation. The snapshot is not live:
// it only changes on explicit load, selection, truncation or refresh
// calls, all made from one goroutine by the view layer.
package snapshot

import (
	"errors"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
)

var (
	// ErrOutOfRange reports a level or index that is not materialized.
	ErrOutOfRange = errors.New("snapshot: level or index out of range")
	// ErrNotApplication reports a root element without the application role.
	ErrNotApplication = errors.New("snapshot: element is not an application")
	// ErrNotSystemWide reports a root element without the system-wide role.
	ErrNotSystemWide = errors.New("snapshot: element is not the system-wide element")
)

// Store is the hierarchy-snapshot cache. levels[0] holds the single root
// node once a target is loaded; levels[l] holds every sibling that is a
// child of the node selected at level l-1. current holds exactly the
// selected node per level. One logical writer and reader (the UI
// goroutine), so no locking.
type Store struct {
	levels   [][]*model.Node
	current  []*model.Node
	mark     model.IndexPath
	settings *model.Settings
}

// NewStore returns an empty store reading the given settings. The settings
// are shared with the composition root; the store never writes them.
func NewStore(settings *model.Settings) *Store {
	if settings == nil {
		settings = model.NewSettings()
	}
	return &Store{settings: settings}
}

// IsEmpty reports whether no target is loaded.
func (s *Store) IsEmpty() bool {
	return len(s.levels) == 0
}

// Depth returns the number of materialized levels.
func (s *Store) Depth() int {
	return len(s.levels)
}

// NodeAt returns the node at (level, index).
func (s *Store) NodeAt(level, index int) (*model.Node, error) {
	if level < 0 || level >= len(s.levels) {
		return nil, ErrOutOfRange
	}
	if index < 0 || index >= len(s.levels[level]) {
		return nil, ErrOutOfRange
	}
	return s.levels[level][index], nil
}

// NodesAt returns every sibling cached at a level, or nil when the level
// is not materialized. Used during transient states, so it never fails.
func (s *Store) NodesAt(level int) []*model.Node {
	if level < 0 || level >= len(s.levels) {
		return nil
	}
	return s.levels[level]
}

// NodeCount returns the number of siblings cached at a level, 0 when the
// level does not exist yet.
func (s *Store) NodeCount(level int) int {
	if level < 0 || level >= len(s.levels) {
		return 0
	}
	return len(s.levels[level])
}

// NodeAtPath returns the node addressed by an index path.
func (s *Store) NodeAtPath(path model.IndexPath) (*model.Node, error) {
	if len(path) == 0 {
		return nil, ErrOutOfRange
	}
	n, err := s.NodeAt(len(path)-1, path.Last())
	if err != nil {
		return nil, err
	}
	if !n.IndexPath.Equal(path) {
		return nil, ErrOutOfRange
	}
	return n, nil
}

// ChildNode returns the index-th child of parent. A nil parent addresses
// the root node. Positions that are not materialized yet, or whose cached
// column belongs to a different parent, yield the empty sentinel node so
// browser callbacks always have something to render.
func (s *Store) ChildNode(parent *model.Node, index int) *model.Node {
	if parent == nil {
		if n, err := s.NodeAt(0, 0); err == nil {
			return n
		}
		return &model.Node{}
	}
	childLevel := len(parent.IndexPath)
	if childLevel >= len(s.levels) || index < 0 || index >= len(s.levels[childLevel]) {
		return &model.Node{}
	}
	child := s.levels[childLevel][index]
	if !child.IndexPath.Equal(parent.IndexPath.Child(index)) {
		return &model.Node{}
	}
	return child
}

// Parent returns the node's parent, recomputed from addressing rather than
// stored in the node. Returns nil for the root.
func (s *Store) Parent(n *model.Node) *model.Node {
	if n == nil || len(n.IndexPath) < 2 {
		return nil
	}
	level := len(n.IndexPath) - 2
	p, err := s.NodeAt(level, n.IndexPath[level])
	if err != nil {
		return nil
	}
	return p
}

// Current returns the selected node per level, root first.
func (s *Store) Current() []*model.Node {
	return s.current
}

// SelectedNode returns the deepest node of the current path, or nil when
// nothing is selected.
func (s *Store) SelectedNode() *model.Node {
	if len(s.current) == 0 {
		return nil
	}
	return s.current[len(s.current)-1]
}

// CurrentPath returns the selected node's index path, or nil.
func (s *Store) CurrentPath() model.IndexPath {
	n := s.SelectedNode()
	if n == nil {
		return nil
	}
	return n.IndexPath
}

// LoadApplicationRoot replaces the whole snapshot with the given
// application element and expands its children. The element must carry the
// application role.
func (s *Store) LoadApplicationRoot(el ax.Element) error {
	role, ok := el.Role()
	if !ok || role != ax.RoleApplication {
		return ErrNotApplication
	}
	s.loadRoot(el, role)
	return s.SelectAndExpand(0, 0)
}

// LoadSystemWideRoot replaces the whole snapshot with the system-wide
// element. It has no children and no AppleScript identity; the symmetric
// SelectAndExpand keeps the selection state consistent with the
// application case.
func (s *Store) LoadSystemWideRoot(el ax.Element) error {
	role, ok := el.Role()
	if !ok || role != ax.RoleSystemWide {
		return ErrNotSystemWide
	}
	s.loadRoot(el, role)
	return s.SelectAndExpand(0, 0)
}

func (s *Store) loadRoot(el ax.Element, role string) {
	root := s.buildNode(el, model.IndexPath{0}, role, 1)
	s.levels = [][]*model.Node{{root}}
	s.current = nil
	s.mark = nil
}

// Clear empties the snapshot entirely.
func (s *Store) Clear() {
	s.levels = nil
	s.current = nil
	s.mark = nil
}

// TruncateAfter keeps levels 0..level and drops everything deeper, then
// refreshes the new deepest selected node's child count from its live
// element. Used when collapsing a branch without a full reload.
func (s *Store) TruncateAfter(level int) error {
	if level < 0 || level >= len(s.levels) {
		return ErrOutOfRange
	}
	s.levels = s.levels[:level+1]
	if len(s.current) > level+1 {
		s.current = s.current[:level+1]
	}
	if n := s.SelectedNode(); n != nil && n.Element != nil {
		n.ChildCount = len(n.Element.Children())
	}
	return nil
}

// RemoveNode deletes a single sibling entry, repairing the index paths of
// everything still reachable so addressing stays consistent: the trailing
// component of the siblings to its right, and the component at this level
// of every node in deeper materialized levels (those hang off the selected
// sibling, which shifts down when it sat right of the removed node).
// Cached labels and script ordinals are left alone; they stay stable until
// the next selection or label refresh. If the removed node was on the
// current path, path and tree are truncated to its parent level. Removing
// the last node of level 0 clears the store.
func (s *Store) RemoveNode(level, index int) error {
	n, err := s.NodeAt(level, index)
	if err != nil {
		return err
	}
	onPath := len(s.current) > level && s.current[level] == n

	siblings := s.levels[level]
	s.levels[level] = append(siblings[:index:index], siblings[index+1:]...)
	for _, sib := range s.levels[level][index:] {
		sib.IndexPath[len(sib.IndexPath)-1]--
	}

	if onPath {
		s.levels = s.levels[:level+1]
		s.current = s.current[:level]
	} else {
		for _, deeper := range s.levels[level+1:] {
			for _, d := range deeper {
				if d.IndexPath[level] > index {
					d.IndexPath[level]--
				}
			}
		}
	}

	if len(s.levels[level]) == 0 {
		if level == 0 {
			s.Clear()
			return nil
		}
		s.levels = s.levels[:level]
		if len(s.current) > level {
			s.current = s.current[:level]
		}
	}
	return nil
}

// SelectAndExpand makes the node at (level, index) the selection and
// materializes its children as the new deepest level. The tree is always
// truncated to level+1 first; a child level is appended only when the live
// element reports children, so selecting a leaf discards stale deeper
// levels instead of leaving them behind.
func (s *Store) SelectAndExpand(level, index int) error {
	node, err := s.NodeAt(level, index)
	if err != nil {
		return err
	}

	s.levels = s.levels[:level+1]
	if len(s.current) > level {
		s.current = s.current[:level]
	}
	s.current = append(s.current, node)

	var children []ax.Element
	if node.Element != nil {
		children = node.Element.Children()
	}
	node.ChildCount = len(children)
	if len(children) == 0 {
		return nil
	}

	ordinals := assignOrdinals(children)
	fringe := make([]*model.Node, len(children))
	for i, child := range children {
		role, _ := child.Role()
		fringe[i] = s.buildNode(child, node.IndexPath.Child(i), role, ordinals[i])
	}
	s.levels = append(s.levels, fringe)
	return nil
}

// buildNode assembles a node record: snapshot-time child count, index
// path, script labels (always cached) and display labels for the active
// terminology.
func (s *Store) buildNode(el ax.Element, path model.IndexPath, role string, ordinal int) *model.Node {
	n := &model.Node{
		Element:       el,
		ChildCount:    len(el.Children()),
		IndexPath:     path,
		Role:          role,
		ScriptOrdinal: ordinal,
	}
	n.BriefScriptDescription, n.FullScriptDescription = scriptLabels(el, role, ordinal)
	applyTerminology(n, s.settings.Terminology)
	return n
}

// RefreshAllLabels recomposes the display labels of every cached node in
// every level, not just the current path. Run on explicit terminology
// changes only; it is O(total cached nodes).
func (s *Store) RefreshAllLabels() {
	terminology := s.settings.Terminology
	for _, level := range s.levels {
		for _, n := range level {
			applyTerminology(n, terminology)
		}
	}
}

// SaveCurrentMark records the selected node's index path so speculative
// SelectAndExpand calls (e.g. while a preview menu tracks the highlight)
// can be rolled back.
func (s *Store) SaveCurrentMark() {
	s.mark = s.CurrentPath().Clone()
}

// HasMark reports whether a saved path mark exists.
func (s *Store) HasMark() bool {
	return s.mark != nil
}

// RestoreFromMark rebuilds the pre-save tree and path by replaying the
// selection level by level from the mark, then clears it. Deterministic as
// long as the live child sets did not change between save and restore.
func (s *Store) RestoreFromMark() error {
	if s.mark == nil {
		return nil
	}
	mark := s.mark
	s.mark = nil
	for level, index := range mark {
		if err := s.SelectAndExpand(level, index); err != nil {
			return err
		}
	}
	return nil
}

// DiscardMark forgets the saved mark without restoring, used when the
// speculative selection becomes the real one.
func (s *Store) DiscardMark() {
	s.mark = nil
}
