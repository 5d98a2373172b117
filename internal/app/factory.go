package app

import (
	"io"
	"os"

	"github.com/kubepick/kubepick/internal/clipboard"
	"github.com/kubepick/kubepick/internal/config"
	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/exec"
	"github.com/kubepick/kubepick/internal/history"
	"github.com/kubepick/kubepick/internal/kubectl"
	"github.com/kubepick/kubepick/internal/log"
	"github.com/kubepick/kubepick/internal/paths"
	"github.com/kubepick/kubepick/internal/picker"
	"github.com/kubepick/kubepick/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Config drives logging, history and kubectl wiring. Nil means
	// defaults.
	Config *config.Config

	// StyleEnabled turns ANSI styling on.
	StyleEnabled bool

	// Out receives action results. Nil means stdout.
	Out io.Writer
}

// New creates an Application with all collaborators wired up.
func New(opts Options) (*domain.Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// The picker owns the terminal, so the only log sink is a file.
	var logger domain.Logger = log.NopLogger{}
	if cfg.EnableLog {
		l, err := log.New(paths.LogFilePath(), log.ParseLevel(cfg.LogLevel))
		if err != nil {
			return nil, err
		}
		logger = l
	}

	style.Init(opts.StyleEnabled)

	// History never blocks a run. When the database cannot be opened the
	// session continues without recording.
	var store domain.HistoryStore = history.Nop{}
	if !cfg.HistoryDisabled {
		s, err := history.New(history.DBPath())
		if err != nil {
			logger.Warn("open history: %v", err)
		} else {
			store = s
		}
	}

	runner := exec.NewRealExecutor()

	return &domain.Application{
		Cluster:   kubectl.NewClient(cfg.KubectlPath, runner, logger),
		Clipboard: clipboard.NewSystem(),
		Picker:    picker.NewInteractive(),
		History:   store,
		Logger:    logger,
		Out:       out,
	}, nil
}

// NewForTesting creates an Application backed by in-memory fakes: a mock
// executor, memory clipboard, no history, no logging, discarded output.
// Callers replace individual fields as needed.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Cluster:   kubectl.NewClient("kubectl", exec.NewMockExecutor(), log.NopLogger{}),
		Clipboard: &clipboard.Memory{},
		Picker:    picker.NewInteractive(),
		History:   history.Nop{},
		Logger:    log.NopLogger{},
		Out:       io.Discard,
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
