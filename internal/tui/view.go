package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alldritt/UIBrowser4-sub001/internal/model"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	onPathItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	previewStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
)

const maxColumns = 3

func (m AppModel) View() string {
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}
	if m.Store.IsEmpty() {
		return "\n  No target loaded.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		width, height = 100, 30
	}

	colHeight := height - 7
	if colHeight < 4 {
		colHeight = 4
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("uibrowser — accessibility hierarchy"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("terminology: %s", m.Settings.Terminology)))
	if m.Previewing {
		b.WriteString("  ")
		b.WriteString(previewStyle.Render("[PREVIEW]"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderBreadcrumb(width))
	b.WriteString("\n")

	// Show the rightmost columns that fit, always including the active
	// one, plus the detail pane.
	firstLevel := m.Level - (maxColumns - 1)
	if firstLevel < 0 {
		firstLevel = 0
	}
	lastLevel := firstLevel + maxColumns - 1
	if lastLevel >= m.Store.Depth() {
		lastLevel = m.Store.Depth() - 1
	}

	detailWidth := width / 3
	colWidth := (width - detailWidth - 2) / maxColumns
	if colWidth < 16 {
		colWidth = 16
	}

	var panes []string
	for level := firstLevel; level <= lastLevel; level++ {
		panes = append(panes, m.renderColumn(level, colWidth-4, colHeight))
	}
	panes = append(panes, m.renderDetails(detailWidth-4, colHeight))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(width))
	return b.String()
}

func (m AppModel) renderBreadcrumb(width int) string {
	var crumbs []string
	for _, n := range m.Store.Current() {
		crumbs = append(crumbs, n.BriefDescription)
	}
	line := breadcrumbStyle.Render(strings.Join(crumbs, " ▸ "))
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (m AppModel) renderColumn(level, innerWidth, height int) string {
	nodes := m.Store.NodesAt(level)
	currentIdx := -1
	if current := m.Store.Current(); level < len(current) {
		currentIdx = current[level].Index()
	}

	filter := strings.ToLower(m.FilterInput.Value())
	active := level == m.Level

	var lines []string
	lines = append(lines, dimStyle.Render(fmt.Sprintf("level %d", level)))

	// Window the list around the interesting row.
	focus := currentIdx
	if active {
		focus = m.Cursor
	}
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if focus > visible/2 {
		start = focus - visible/2
	}

	shown := 0
	for i := start; i < len(nodes) && shown < visible; i++ {
		n := nodes[i]
		if active && filter != "" && !strings.Contains(strings.ToLower(n.BriefDescription), filter) &&
			i != m.Cursor {
			continue
		}
		label := truncate(n.MediumDescription, innerWidth-2)
		if n.ChildCount > 0 {
			label += " ›"
		}
		switch {
		case active && i == m.Cursor:
			lines = append(lines, selectedItemStyle.Render("▶ "+label))
		case i == currentIdx:
			lines = append(lines, onPathItemStyle.Render("▸ "+label))
		default:
			lines = append(lines, normalItemStyle.Render("  "+label))
		}
		shown++
	}
	if len(nodes) == 0 {
		lines = append(lines, dimStyle.Render("(no children)"))
	}

	style := columnStyle
	if active {
		style = activeColumnStyle
	}
	return style.Width(innerWidth).Height(height).Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderDetails(innerWidth, height int) string {
	n := m.nodeUnderCursor()
	var lines []string
	lines = append(lines, dimStyle.Render("details"))
	if n == nil || n.IsZero() {
		lines = append(lines, dimStyle.Render("(nothing selected)"))
	} else {
		lines = append(lines,
			"brief:  "+truncate(n.BriefDescription, innerWidth-8),
			"medium: "+truncate(n.MediumDescription, innerWidth-8),
			"full:   "+truncate(n.FullDescription, innerWidth-8),
			"",
			"script: "+truncate(n.FullScriptDescription, innerWidth-8),
			"",
			dimStyle.Render(fmt.Sprintf("path %s  children %d", n.IndexPath, n.ChildCount)),
		)
		if n.Element != nil {
			if help, ok := n.Element.HelpText(); ok {
				lines = append(lines, "", "help: "+truncate(help, innerWidth-6))
			}
			if n.Element.Destroyed() {
				lines = append(lines, "", warnStyle.Render("element destroyed"))
			}
			lines = append(lines, "", dimStyle.Render(truncate(snapshot.ScriptReference(n.Element), innerWidth)))
		}
	}
	return columnStyle.Width(innerWidth).Height(height).Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderFooter(width int) string {
	var parts []string
	if m.FilterMode {
		parts = append(parts, "/ "+m.FilterInput.View())
	} else {
		help := "↑↓ select · ←→ level · p preview · enter commit · esc cancel · t terminology · / filter · x remove · r reload · q quit"
		parts = append(parts, dimStyle.Render(help))
	}
	if m.TableWarning != "" {
		parts = append(parts, warnStyle.Render("AppleScript names unavailable: "+m.TableWarning))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "\n"))
}

// nodeUnderCursor returns the node the cursor is on, which is also the
// store's selected node whenever selection succeeded.
func (m AppModel) nodeUnderCursor() *model.Node {
	n, err := m.Store.NodeAt(m.Level, m.Cursor)
	if err != nil {
		return nil
	}
	return n
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
