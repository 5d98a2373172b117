package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

// Scrollbar characters
const (
	scrollThumbChar = "█" // solid block thumb
	scrollTrackChar = "│" // vertical line track
)

// BuildScrollbar renders a one-character-wide scrollbar for a panel.
// viewHeight is the track height, totalItems the content length, and
// scrollOffset the 0-based position of the window within the content.
// The track is blank when everything fits.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, thumbColor, trackColor lipgloss.Color) []string {
	scrollbar := make([]string, viewHeight)

	if totalItems <= viewHeight {
		for i := range scrollbar {
			scrollbar[i] = " "
		}
		return scrollbar
	}

	// Thumb size is proportional to the visible share of the content.
	thumbSize := (viewHeight * viewHeight) / totalItems
	thumbSize = max(thumbSize, 1)
	maxThumbSize := max(viewHeight-2, 1)
	if thumbSize > maxThumbSize {
		thumbSize = maxThumbSize
	}

	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (scrollOffset * trackSpace) / maxScroll
	}
	thumbPos = max(thumbPos, 0)
	thumbPos = min(thumbPos, trackSpace)

	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := 0; i < viewHeight; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			scrollbar[i] = thumbStyle.Render(scrollThumbChar)
		} else {
			scrollbar[i] = trackStyle.Render(scrollTrackChar)
		}
	}

	return scrollbar
}
