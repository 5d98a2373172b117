package bindings

import (
	"context"
	"strings"

	"github.com/kubepick/kubepick/internal/domain"
)

// namesAction prints the selected identifiers, one per line.
type namesAction struct {
	meta
}

// NewNames creates the action that returns selected resource names.
func NewNames() Action {
	return &namesAction{meta: meta{trigger: "ctrl+n", description: "Names"}}
}

func (a *namesAction) Execute(_ context.Context, sel domain.Selection) (string, error) {
	return strings.Join(sel.Names, "\n"), nil
}
