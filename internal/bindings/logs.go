package bindings

import (
	"context"
	"fmt"
	"io"

	"github.com/kubepick/kubepick/internal/domain"
)

// logsAction follows the logs of a single selected pod, relaying the
// stream to out as it arrives. The stream is the output, so Execute
// returns no final string.
type logsAction struct {
	meta
	cluster domain.ClusterClient
	out     io.Writer
}

// NewLogs creates the log-tailing action. It only accepts pods and only
// a single selection.
func NewLogs(cluster domain.ClusterClient, out io.Writer) Action {
	return &logsAction{
		meta:    meta{trigger: "ctrl+l", description: "Logs", resources: podResourceTypes},
		cluster: cluster,
		out:     out,
	}
}

func (a *logsAction) Execute(ctx context.Context, sel domain.Selection) (string, error) {
	if sel.Count() != 1 {
		return fmt.Sprintf("logs only support a single resource, %d selected", sel.Count()), nil
	}
	if err := a.cluster.StreamLogs(ctx, sel.Namespace, sel.Names[0], a.out); err != nil {
		return "", err
	}
	return "", nil
}
