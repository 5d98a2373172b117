package bindings

import (
	"context"

	"github.com/kubepick/kubepick/internal/domain"
)

// editAction opens the selection in the user's editor. kubectl inherits
// the terminal for the duration, so nothing is captured or printed.
type editAction struct {
	meta
	cluster domain.ClusterClient
}

// NewEdit creates the action that edits selected resources in place.
func NewEdit(cluster domain.ClusterClient) Action {
	return &editAction{
		meta:    meta{trigger: "ctrl+e", description: "Edit"},
		cluster: cluster,
	}
}

func (a *editAction) Execute(ctx context.Context, sel domain.Selection) (string, error) {
	if err := a.cluster.Edit(ctx, sel.Namespace, sel.ResourceType, sel.Names); err != nil {
		return "", err
	}
	return "", nil
}
