package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
)

// AppModel holds the TUI state. The snapshot store is the single source of
// truth for the hierarchy; the model only tracks which column and row the
// cursor is on plus transient view state.
type AppModel struct {
	// Data
	Store    *snapshot.Store
	Settings *model.Settings
	Root     ax.Element
	Err      error

	// Cursor: the column (level) being navigated and the row within it.
	// Moving the highlight selects, browser style, so the store's current
	// path always tracks the cursor.
	Level  int
	Cursor int

	// Preview mode: selection changes are speculative until committed or
	// cancelled via the store's saved path mark.
	Previewing bool

	// Filter state for the active column (display-only).
	FilterMode  bool
	FilterInput textinput.Model

	// One-time warning when the AppleScript role table failed to load.
	TableWarning string

	// Layout
	WindowSize tea.WindowSizeMsg
}

// InitialModel builds the TUI over an already-loaded store.
func InitialModel(store *snapshot.Store, settings *model.Settings, root ax.Element) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter column..."
	ti.CharLimit = 40
	ti.Width = 24

	m := AppModel{
		Store:       store,
		Settings:    settings,
		Root:        root,
		FilterInput: ti,
	}
	if err := snapshot.TableError(); err != nil {
		m.TableWarning = err.Error()
	}
	return m
}
