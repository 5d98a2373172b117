// Package picker implements the interactive fuzzy selector the dispatch
// loop hands listing rows to. One invocation per run: the user filters,
// multi-selects, and accepts with a registered trigger key or aborts.
package picker

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/usage"
)

// Interactive runs the picker over the real terminal.
type Interactive struct{}

// NewInteractive creates the terminal picker.
func NewInteractive() *Interactive {
	return &Interactive{}
}

// Pick shows rows in the selector and blocks until the user accepts
// with a registered key or aborts.
func (p *Interactive) Pick(ctx context.Context, req domain.PickRequest) (domain.PickResult, error) {
	// Hard guard: Bubble Tea REQUIRES a real terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return domain.PickResult{}, usage.NotATerminal()
	}

	prog := tea.NewProgram(
		newModel(req),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := prog.Run()
	if err != nil {
		// Context cancellation kills the program mid-pick; that is the
		// user interrupting, not a failure.
		if ctx.Err() != nil {
			return domain.PickResult{Aborted: true}, nil
		}
		return domain.PickResult{}, err
	}

	fm, ok := final.(model)
	if !ok || fm.aborted || !fm.accepted {
		return domain.PickResult{Aborted: true}, nil
	}

	return domain.PickResult{
		Selected: fm.selectedTexts(),
		Trigger:  fm.trigger,
	}, nil
}

// Verify Interactive implements domain.Picker
var _ domain.Picker = (*Interactive)(nil)
