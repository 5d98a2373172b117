package bindings

import (
	"context"

	"github.com/kubepick/kubepick/internal/domain"
)

// describeAction prints the kubectl description of the selection.
type describeAction struct {
	meta
	cluster domain.ClusterClient
}

// NewDescribe creates the action that describes selected resources.
func NewDescribe(cluster domain.ClusterClient) Action {
	return &describeAction{
		meta:    meta{trigger: "ctrl+d", description: "Describe"},
		cluster: cluster,
	}
}

func (a *describeAction) Execute(ctx context.Context, sel domain.Selection) (string, error) {
	return a.cluster.Describe(ctx, sel.Namespace, sel.ResourceType, sel.Names)
}
