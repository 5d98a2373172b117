package bindings

import (
	"context"

	"github.com/kubepick/kubepick/internal/domain"
)

// getAction dumps the selected resources in a structured output format.
type getAction struct {
	meta
	format  string
	cluster domain.ClusterClient
}

// NewJSON creates the action that prints selected resources as JSON.
func NewJSON(cluster domain.ClusterClient) Action {
	return &getAction{
		meta:    meta{trigger: "ctrl+j", description: "JSON"},
		format:  "json",
		cluster: cluster,
	}
}

// NewYAML creates the action that prints selected resources as YAML.
func NewYAML(cluster domain.ClusterClient) Action {
	return &getAction{
		meta:    meta{trigger: "ctrl+y", description: "YAML"},
		format:  "yaml",
		cluster: cluster,
	}
}

func (a *getAction) Execute(ctx context.Context, sel domain.Selection) (string, error) {
	return a.cluster.Get(ctx, sel.Namespace, a.format, sel.ResourceType, sel.Names)
}
