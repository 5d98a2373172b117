package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kubepick/kubepick/internal/bindings"
	"github.com/kubepick/kubepick/internal/config"
	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/usage"
)

// ErrNoListing marks a run whose listing call failed or produced no
// rows. The cause is already logged when this is returned; callers exit
// nonzero without printing anything.
var ErrNoListing = errors.New("no listing")

// Options configures one dispatch run.
type Options struct {
	Namespace    string
	ResourceType string
	Wide         bool
	InitialQuery string
	ColumnCap    int
}

// Loop drives one round of listing, picking and dispatching against the
// wired application.
type Loop struct {
	app  *domain.Application
	opts Options
}

// New creates a dispatch loop. An empty resource type defaults to pod,
// a non-positive column cap to the configured default.
func New(app *domain.Application, opts Options) *Loop {
	if opts.ResourceType == "" {
		opts.ResourceType = "pod"
	}
	if opts.ColumnCap <= 0 {
		opts.ColumnCap = config.DefaultColumnBindingCap
	}
	return &Loop{app: app, opts: opts}
}

// Run walks the Listing, Picking, Dispatching and Done states in order.
// It returns nil on normal completion and on user abort.
func (l *Loop) Run(ctx context.Context) error {
	if !l.app.Cluster.IsAvailable() {
		return usage.KubectlNotInstalled()
	}

	reg, err := bindings.NewBuiltinRegistry(bindings.Deps{
		Cluster:   l.app.Cluster,
		Clipboard: l.app.Clipboard,
		Logger:    l.app.Logger,
		Out:       l.app.Out,
	})
	if err != nil {
		return err
	}

	listing, err := l.list(ctx)
	if err != nil {
		return err
	}

	// Column bindings must exist before the first row preview renders.
	if err := bindings.RegisterColumns(reg, listing.Header, l.opts.ColumnCap); err != nil {
		return err
	}

	result, err := l.app.Picker.Pick(ctx, pickRequest(reg, listing, l.opts))
	if err != nil {
		return err
	}
	if result.Aborted {
		l.app.Logger.Debug("picker aborted")
		return nil
	}

	l.dispatch(ctx, reg, result)
	return nil
}

// list fetches and splits the resource listing. Failures and empty
// listings end the run quietly.
func (l *Loop) list(ctx context.Context) (domain.Listing, error) {
	listing, err := l.app.Cluster.List(ctx, l.opts.Namespace, l.opts.ResourceType, l.opts.Wide)
	if err != nil {
		l.app.Logger.Error("list %s: %v", l.opts.ResourceType, err)
		return domain.Listing{}, ErrNoListing
	}
	if listing.Empty() {
		l.app.Logger.Info("no %s resources listed", l.opts.ResourceType)
		return domain.Listing{}, ErrNoListing
	}
	return listing, nil
}

// pickRequest projects a listing into the picker's input. Every row
// shares one preview block: the bindings summary for the resource type.
func pickRequest(reg *bindings.Registry, listing domain.Listing, opts Options) domain.PickRequest {
	preview := strings.Join(reg.PreviewFor(opts.ResourceType), "\n")

	rows := make([]domain.Row, 0, len(listing.Lines))
	for _, line := range listing.Lines {
		rows = append(rows, row{text: line, preview: preview})
	}

	return domain.PickRequest{
		Prompt:       opts.ResourceType + "> ",
		Header:       listing.Header,
		Rows:         rows,
		AcceptKeys:   reg.Triggers(),
		InitialQuery: opts.InitialQuery,
	}
}

// dispatch resolves the accepted trigger and runs its action. Nothing
// here fails the run: unknown triggers are ignored, mismatches print a
// message instead of executing, and collaborator errors are logged.
func (l *Loop) dispatch(ctx context.Context, reg *bindings.Registry, result domain.PickResult) {
	action, ok := reg.Lookup(result.Trigger)
	if !ok {
		l.app.Logger.Warn("picker reported unregistered trigger %q", result.Trigger)
		return
	}

	sel := domain.NewSelection(l.opts.Namespace, l.opts.ResourceType, result.Selected)

	if !action.AppliesTo(sel.ResourceType) {
		l.print(fmt.Sprintf("%s does not work for resource type %s", action.Description(), sel.ResourceType))
		return
	}

	out, err := action.Execute(ctx, sel)
	l.record(result.Trigger, action.Description(), sel)
	if err != nil {
		l.app.Logger.Error("%s: %v", action.Description(), err)
		return
	}

	l.print(out)
}

// print writes a non-empty result verbatim to the run's output.
func (l *Loop) print(result string) {
	if result == "" {
		return
	}
	fmt.Fprintln(l.app.Out, result)
}

// record appends the dispatch to history, best effort.
func (l *Loop) record(trigger, description string, sel domain.Selection) {
	if l.app.History == nil {
		return
	}
	err := l.app.History.Record(domain.DispatchRecord{
		Namespace:    sel.Namespace,
		ResourceType: sel.ResourceType,
		AcceptKey:    trigger,
		Action:       description,
		Selected:     sel.Count(),
	})
	if err != nil {
		l.app.Logger.Warn("record history: %v", err)
	}
}

// row is one listing line as handed to the picker.
type row struct {
	text    string
	preview string
}

func (r row) Text() string    { return r.text }
func (r row) Preview() string { return r.preview }

var _ domain.Row = row{}
