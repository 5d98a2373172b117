// Package kubectl shells out to the kubectl binary and adapts its output
// to the domain types. Every cluster interaction in kp goes through here.
package kubectl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/exec"
	"github.com/kubepick/kubepick/internal/log"
)

// streamChunkSize is the read size used when relaying follow-mode logs.
const streamChunkSize = 4096

// Client implements domain.ClusterClient on top of the kubectl binary.
type Client struct {
	bin    string
	runner exec.CommandExecutor
	logger domain.Logger
}

// NewClient creates a cluster client that invokes the given kubectl binary.
// An empty bin falls back to "kubectl" from PATH.
func NewClient(bin string, runner exec.CommandExecutor, logger domain.Logger) *Client {
	if bin == "" {
		bin = "kubectl"
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Client{bin: bin, runner: runner, logger: logger}
}

// IsAvailable reports whether the kubectl binary can be resolved.
func (c *Client) IsAvailable() bool {
	return c.runner.LookPath(c.bin)
}

// baseArgs builds the common `<verb> [resource] [--namespace ns]` prefix
// shared by every kubectl invocation.
func baseArgs(verb, resourceType, namespace string) []string {
	args := []string{verb}
	if resourceType != "" {
		args = append(args, resourceType)
	}
	if namespace != "" {
		args = append(args, "--namespace", namespace)
	}
	return args
}

// List runs `kubectl get <resourceType>` and splits the result into a
// header line and one line per resource.
func (c *Client) List(ctx context.Context, namespace, resourceType string, wide bool) (domain.Listing, error) {
	args := baseArgs("get", resourceType, namespace)
	if wide {
		args = append(args, "--output", "wide")
	}
	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		c.logger.Error("kubectl get %s failed: %v", resourceType, err)
		return domain.Listing{}, fmt.Errorf("list %s: %w", resourceType, err)
	}
	lines := splitLines(out)
	if len(lines) == 0 {
		return domain.Listing{}, fmt.Errorf("list %s: kubectl produced no output", resourceType)
	}
	return domain.Listing{Header: lines[0], Lines: lines[1:]}, nil
}

// Get fetches the named resources rendered as json or yaml.
func (c *Client) Get(ctx context.Context, namespace, format, resourceType string, names []string) (string, error) {
	args := baseArgs("get", resourceType, namespace)
	args = append(args, "--output", format)
	args = append(args, names...)
	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		c.logger.Error("kubectl get -o %s failed: %v", format, err)
		return "", fmt.Errorf("get %s: %w", resourceType, err)
	}
	return string(out), nil
}

// Describe returns the human-readable description of the named resources.
func (c *Client) Describe(ctx context.Context, namespace, resourceType string, names []string) (string, error) {
	args := baseArgs("describe", resourceType, namespace)
	args = append(args, names...)
	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		c.logger.Error("kubectl describe failed: %v", err)
		return "", fmt.Errorf("describe %s: %w", resourceType, err)
	}
	return string(out), nil
}

// Edit opens the named resources in the user's editor. kubectl owns the
// terminal for the duration of the call.
func (c *Client) Edit(ctx context.Context, namespace, resourceType string, names []string) error {
	args := baseArgs("edit", resourceType, namespace)
	args = append(args, names...)
	if err := c.runner.Interactive(ctx, c.bin, args...); err != nil {
		c.logger.Error("kubectl edit failed: %v", err)
		return fmt.Errorf("edit %s: %w", resourceType, err)
	}
	return nil
}

// StreamLogs follows the logs of a single pod and relays them to out in
// fixed-size chunks until the stream ends or ctx is cancelled.
func (c *Client) StreamLogs(ctx context.Context, namespace, name string, out io.Writer) error {
	args := []string{"logs", "--follow", name}
	if namespace != "" {
		args = append(args, "--namespace", namespace)
	}
	handle, err := c.runner.Stream(ctx, c.bin, args...)
	if err != nil {
		c.logger.Error("kubectl logs failed to start: %v", err)
		return fmt.Errorf("logs %s: %w", name, err)
	}
	buf := make([]byte, streamChunkSize)
	r := handle.Stdout()
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				c.logger.Warn("log relay write failed: %v", writeErr)
				break
			}
		}
		if readErr != nil {
			break
		}
	}
	if err := handle.Wait(); err != nil {
		// Cancellation kills the follow process, which is the normal way
		// a log stream ends.
		if ctx.Err() != nil {
			c.logger.Debug("log stream for %s cancelled", name)
			return nil
		}
		c.logger.Error("kubectl logs exited: %v", err)
		return fmt.Errorf("logs %s: %w", name, err)
	}
	return nil
}

// Cordon marks the named nodes as unschedulable.
func (c *Client) Cordon(ctx context.Context, namespace string, names []string) (string, error) {
	return c.schedulable(ctx, "cordon", namespace, names)
}

// Uncordon marks the named nodes as schedulable again.
func (c *Client) Uncordon(ctx context.Context, namespace string, names []string) (string, error) {
	return c.schedulable(ctx, "uncordon", namespace, names)
}

func (c *Client) schedulable(ctx context.Context, verb, namespace string, names []string) (string, error) {
	args := baseArgs(verb, "", namespace)
	args = append(args, names...)
	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		c.logger.Error("kubectl %s failed: %v", verb, err)
		return "", fmt.Errorf("%s: %w", verb, err)
	}
	return string(out), nil
}

// splitLines breaks command output into trimmed lines, dropping the
// trailing newline kubectl always emits. Blank output yields no lines.
func splitLines(out []byte) []string {
	text := strings.TrimRight(string(out), "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Verify Client implements domain.ClusterClient
var _ domain.ClusterClient = (*Client)(nil)
