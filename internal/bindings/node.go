package bindings

import (
	"context"

	"github.com/kubepick/kubepick/internal/domain"
)

// scheduleAction cordons or uncordons the selected nodes and prints
// kubectl's confirmation output.
type scheduleAction struct {
	meta
	uncordon bool
	cluster  domain.ClusterClient
}

// NewCordon creates the action that marks selected nodes unschedulable.
func NewCordon(cluster domain.ClusterClient) Action {
	return &scheduleAction{
		meta:    meta{trigger: "ctrl+k", description: "Cordon", resources: nodeResourceTypes},
		cluster: cluster,
	}
}

// NewUncordon creates the action that marks selected nodes schedulable.
func NewUncordon(cluster domain.ClusterClient) Action {
	return &scheduleAction{
		meta:     meta{trigger: "ctrl+u", description: "Uncordon", resources: nodeResourceTypes},
		uncordon: true,
		cluster:  cluster,
	}
}

func (a *scheduleAction) Execute(ctx context.Context, sel domain.Selection) (string, error) {
	if a.uncordon {
		return a.cluster.Uncordon(ctx, sel.Namespace, sel.Names)
	}
	return a.cluster.Cordon(ctx, sel.Namespace, sel.Names)
}
