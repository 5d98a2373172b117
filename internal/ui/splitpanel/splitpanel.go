// Package splitpanel renders the picker's bordered panel pair: the
// resource list on the left and the bindings preview on the right.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel holds the visible content for one side of the split.
type Panel struct {
	Lines      []string // content lines, already windowed to the visible region
	ScrollPos  int      // current scroll position, for scrollbar placement
	TotalItems int      // total scrollable items behind the window
}

// Config holds layout configuration.
type Config struct {
	PreviewWidthPercent float64 // e.g. 0.4 for 40%
	PreviewMinWidth     int
	PreviewMaxWidth     int
}

// DefaultConfig sizes the preview for the short binding lines it shows.
func DefaultConfig() Config {
	return Config{
		PreviewWidthPercent: 0.4,
		PreviewMinWidth:     26,
		PreviewMaxWidth:     44,
	}
}

// Layout computes panel dimensions and renders the split.
type Layout struct {
	Width        int
	Height       int
	ListWidth    int
	PreviewWidth int
	PreviewOpen  bool
	ActiveColor  lipgloss.Color
	DimColor     lipgloss.Color
	config       Config
}

// NewLayout creates a layout for the given terminal width.
func NewLayout(width int, cfg Config) *Layout {
	l := &Layout{
		Width:       width,
		ActiveColor: lipgloss.Color("62"),
		DimColor:    lipgloss.Color("240"),
		config:      cfg,
	}
	l.recalculate()
	return l
}

// SetWidth updates the layout for a resized terminal.
func (l *Layout) SetWidth(width int) {
	l.Width = width
	l.recalculate()
}

// SetPreviewOpen shows or hides the preview panel and recomputes widths.
func (l *Layout) SetPreviewOpen(open bool) {
	l.PreviewOpen = open
	l.recalculate()
}

func (l *Layout) recalculate() {
	if !l.PreviewOpen {
		l.PreviewWidth = 0
		l.ListWidth = l.Width
		return
	}

	previewWidth := int(float64(l.Width) * l.config.PreviewWidthPercent)
	previewWidth = max(previewWidth, l.config.PreviewMinWidth)
	previewWidth = min(previewWidth, l.config.PreviewMaxWidth)
	// Never let the preview squeeze the list out entirely.
	previewWidth = min(previewWidth, l.Width/2)

	l.PreviewWidth = previewWidth
	l.ListWidth = l.Width - previewWidth
}

// Render renders the list panel and, when open, the preview beside it.
func (l *Layout) Render(list, preview Panel, height int) string {
	l.Height = height

	listStr := l.buildPanel(list, l.ListWidth, height, true)
	if !l.PreviewOpen || l.PreviewWidth <= 0 {
		return listStr
	}

	previewStr := l.buildPanel(preview, l.PreviewWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, listStr, previewStr)
}

// buildPanel creates a single bordered panel with a scrollbar column.
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool) string {
	// Content width = panel width - border(2) - padding(2) - scrollbar(2)
	contentWidth := max(width-6, 1)

	// Visible height = panel height - border(2)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, l.ActiveColor, l.DimColor)

	rendered := make([]string, 0, len(lines))
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = truncate(line, contentWidth)
		} else if lineWidth < contentWidth {
			line = line + strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(scrollbar) {
			scrollChar = scrollbar[i]
		}
		rendered = append(rendered, line+" "+scrollChar)
	}

	borderColor := l.DimColor
	if focused {
		borderColor = l.ActiveColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return box.Render(strings.Join(rendered, "\n"))
}

// truncate shortens a line to maxWidth display cells with an ellipsis.
func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// ListContentWidth returns the usable width for list lines.
func (l *Layout) ListContentWidth() int {
	return l.ListWidth - 6 // border(2) + padding(2) + scrollbar(2)
}

// PreviewContentWidth returns the usable width for preview lines.
func (l *Layout) PreviewContentWidth() int {
	if l.PreviewWidth == 0 {
		return 0
	}
	return l.PreviewWidth - 6
}

// VisibleHeight returns how many lines fit inside a panel.
func (l *Layout) VisibleHeight() int {
	return l.Height - 2 // border(2)
}
