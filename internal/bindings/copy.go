package bindings

import (
	"context"
	"strings"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/log"
)

// copyAction is the default accept: copy the selected names to the
// system clipboard, print nothing.
type copyAction struct {
	meta
	clipboard domain.Clipboard
	logger    domain.Logger
}

// NewCopy creates the clipboard action bound to plain accept.
func NewCopy(clip domain.Clipboard, logger domain.Logger) Action {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &copyAction{
		meta:      meta{trigger: "", description: "Copy"},
		clipboard: clip,
		logger:    logger,
	}
}

func (a *copyAction) Execute(_ context.Context, sel domain.Selection) (string, error) {
	names := strings.Join(sel.Names, "\n")
	// Clipboard access is best effort. A headless session without a
	// clipboard service should not turn acceptance into a failure.
	if err := a.clipboard.Set(names); err != nil {
		a.logger.Warn("clipboard copy failed: %v", err)
	}
	return "", nil
}
