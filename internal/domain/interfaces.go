package domain

import (
	"context"
	"io"
)

// ClusterClient defines the kubectl operations consumed by actions and the
// dispatch loop. The production implementation shells out to the real
// binary; tests inject fakes.
type ClusterClient interface {
	// IsAvailable checks if kubectl is installed and accessible.
	IsAvailable() bool

	// List returns the listing for a resource type, optionally
	// namespace-scoped and with the wide column set.
	List(ctx context.Context, namespace, resourceType string, wide bool) (Listing, error)

	// Get returns the named resources rendered in the given output format
	// ("json" or "yaml").
	Get(ctx context.Context, namespace, format, resourceType string, names []string) (string, error)

	// Describe returns the describe output for the named resources.
	Describe(ctx context.Context, namespace, resourceType string, names []string) (string, error)

	// Edit opens the named resources in the user's editor with the real
	// terminal attached; output is not captured.
	Edit(ctx context.Context, namespace, resourceType string, names []string) error

	// StreamLogs follows the logs of a single resource, writing chunks to
	// out as they arrive until the stream closes or ctx is cancelled.
	StreamLogs(ctx context.Context, namespace, name string, out io.Writer) error

	// Cordon marks the named nodes unschedulable.
	Cordon(ctx context.Context, namespace string, names []string) (string, error)

	// Uncordon marks the named nodes schedulable again.
	Uncordon(ctx context.Context, namespace string, names []string) (string, error)
}

// Clipboard defines the system clipboard sink.
type Clipboard interface {
	// Set replaces the clipboard contents.
	Set(text string) error
}

// Row is one selectable listing line as the picker sees it.
type Row interface {
	// Text returns the raw listing line.
	Text() string

	// Preview returns the action summary rendered for this row.
	Preview() string
}

// PickRequest describes one picker invocation.
type PickRequest struct {
	Prompt       string   // input prompt, derived from the resource type
	Header       string   // listing header shown as a caption
	Rows         []Row    // selectable rows, in listing order
	AcceptKeys   []string // trigger keys that accept the selection
	InitialQuery string   // pre-filled filter text
}

// PickResult is what the user picked, or an abort.
type PickResult struct {
	Selected []string // raw lines of the selected rows, in listing order
	Trigger  string   // the key that accepted; empty string means plain enter
	Aborted  bool
}

// Picker runs one interactive selection round.
type Picker interface {
	// Pick displays the rows and blocks until the user accepts or aborts.
	Pick(ctx context.Context, req PickRequest) (PickResult, error)
}

// HistoryStore defines operations for recording and reading dispatches.
type HistoryStore interface {
	// Record appends one dispatch record.
	Record(rec DispatchRecord) error

	// Recent returns up to limit records, newest first.
	Recent(limit int) ([]DispatchRecord, error)

	// Close closes the store.
	Close() error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Application bundles the wired collaborators for one run.
type Application struct {
	Cluster   ClusterClient
	Clipboard Clipboard
	Picker    Picker
	History   HistoryStore
	Logger    Logger
	Out       io.Writer
}
