package bindings

import (
	"io"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/log"
)

// Deps carries the collaborators the built-in actions are wired to.
type Deps struct {
	Cluster   domain.ClusterClient
	Clipboard domain.Clipboard
	Logger    domain.Logger
	Out       io.Writer
}

// NewBuiltinRegistry builds a registry with every static action
// registered. Column actions are added later, once the listing header
// is known.
func NewBuiltinRegistry(deps Deps) (*Registry, error) {
	if deps.Logger == nil {
		deps.Logger = log.NopLogger{}
	}

	reg := NewRegistry()
	actions := []Action{
		NewCopy(deps.Clipboard, deps.Logger),
		NewNames(),
		NewJSON(deps.Cluster),
		NewYAML(deps.Cluster),
		NewDescribe(deps.Cluster),
		NewEdit(deps.Cluster),
		NewLogs(deps.Cluster, deps.Out),
		NewCordon(deps.Cluster),
		NewUncordon(deps.Cluster),
	}
	for _, action := range actions {
		if err := reg.Register(action); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
