package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
)

// terminologyCycle is the order the 't' key walks through.
var terminologyCycle = []model.Terminology{
	model.TerminologyNatural,
	model.TerminologyRaw,
	model.TerminologyAccessibility,
	model.TerminologyAppleScript,
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		if m.FilterMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.FilterMode = false
				return m, nil
			case tea.KeyEsc:
				m.FilterMode = false
				m.FilterInput.Blur()
				m.FilterInput.SetValue("")
				return m, nil
			}
			m.FilterInput, cmd = m.FilterInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.FilterInput.Value() != "" {
				m.FilterInput.SetValue("")
				return m, nil
			}
			if m.Previewing {
				// Cancel the speculative navigation and jump the cursor
				// back to wherever the restored selection ended up.
				m.Previewing = false
				m.Err = m.Store.RestoreFromMark()
				m.syncCursorToSelection()
				return m, nil
			}

		case "enter":
			if m.Previewing {
				// Commit: the speculative selection becomes real.
				m.Previewing = false
				m.Store.DiscardMark()
				return m, nil
			}

		case "p":
			if !m.Previewing && m.Store.SelectedNode() != nil {
				m.Store.SaveCurrentMark()
				m.Previewing = true
			}

		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.selectCursor()
			}

		case "down", "j":
			if m.Cursor < m.Store.NodeCount(m.Level)-1 {
				m.Cursor++
				m.selectCursor()
			}

		case "left", "h":
			if m.Level > 0 {
				m.Level--
				m.Cursor = m.currentIndexAt(m.Level)
				m.selectCursor()
				m.FilterInput.SetValue("")
			}

		case "right", "l":
			// Descend into the already-materialized child column.
			if m.Level+1 < m.Store.Depth() && m.Store.NodeCount(m.Level+1) > 0 {
				m.Level++
				m.Cursor = 0
				m.selectCursor()
				m.FilterInput.SetValue("")
			}

		case "x":
			// Drop a stale sibling from the snapshot.
			if err := m.Store.RemoveNode(m.Level, m.Cursor); err == nil {
				if m.Cursor >= m.Store.NodeCount(m.Level) {
					m.Cursor = m.Store.NodeCount(m.Level) - 1
				}
				if m.Cursor < 0 {
					m.Level, m.Cursor = maxInt(m.Level-1, 0), 0
				}
				m.syncCursorToSelection()
			}

		case "t":
			m.Settings.Terminology = nextTerminology(m.Settings.Terminology)
			m.Store.RefreshAllLabels()

		case "r":
			// Reload the target from its live root, dropping stale nodes.
			if m.Root != nil {
				if role, _ := m.Root.Role(); role == ax.RoleSystemWide {
					m.Err = m.Store.LoadSystemWideRoot(m.Root)
				} else {
					m.Err = m.Store.LoadApplicationRoot(m.Root)
				}
				m.Level, m.Cursor = 0, 0
			}

		case "/":
			m.FilterMode = true
			m.FilterInput.Focus()
			m.FilterInput.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// selectCursor pushes the cursor position into the store.
func (m *AppModel) selectCursor() {
	if err := m.Store.SelectAndExpand(m.Level, m.Cursor); err != nil {
		m.Err = err
	}
}

// currentIndexAt returns the selected index at a level, 0 if none.
func (m *AppModel) currentIndexAt(level int) int {
	current := m.Store.Current()
	if level < len(current) {
		return current[level].Index()
	}
	return 0
}

// syncCursorToSelection moves the cursor to the store's selected node,
// used after restores and removals rearrange the tree under the cursor.
func (m *AppModel) syncCursorToSelection() {
	path := m.Store.CurrentPath()
	if len(path) == 0 {
		m.Level, m.Cursor = 0, 0
		return
	}
	m.Level = len(path) - 1
	m.Cursor = path.Last()
}

func nextTerminology(t model.Terminology) model.Terminology {
	for i, cur := range terminologyCycle {
		if cur == t {
			return terminologyCycle[(i+1)%len(terminologyCycle)]
		}
	}
	return terminologyCycle[0]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
