// Package exec provides an abstraction over command execution for
// testability. Production code uses RealExecutor while tests inject a
// MockExecutor that returns pre-recorded responses.
package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
)

// CommandExecutor abstracts the three ways kp runs a subprocess.
type CommandExecutor interface {
	// Output runs a command to completion and returns its stdout.
	// On failure the returned error carries stderr when available
	// (see exec.ExitError).
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Interactive runs a command attached to the caller's terminal.
	// Nothing is captured; the user's editor and prompts work normally.
	Interactive(ctx context.Context, name string, args ...string) error

	// Stream starts a command and returns a handle on its live stdout.
	Stream(ctx context.Context, name string, args ...string) (StreamHandle, error)

	// LookPath reports whether a binary is resolvable in PATH.
	LookPath(name string) bool
}

// StreamHandle represents a running command whose stdout is consumed
// incrementally.
type StreamHandle interface {
	// Stdout returns the live standard output stream.
	Stdout() io.Reader

	// Wait blocks until the command exits.
	Wait() error
}

// RealExecutor executes commands using os/exec.
type RealExecutor struct{}

// NewRealExecutor returns a new RealExecutor.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Output runs a command to completion and returns its stdout.
func (e *RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Interactive runs a command attached to the caller's terminal.
func (e *RealExecutor) Interactive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Stream starts a command and returns a handle on its live stdout.
// Cancelling ctx kills the process, which closes the stream.
func (e *RealExecutor) Stream(ctx context.Context, name string, args ...string) (StreamHandle, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &realStreamHandle{cmd: cmd, stdout: stdout}, nil
}

// LookPath reports whether a binary is resolvable in PATH.
func (e *RealExecutor) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

type realStreamHandle struct {
	cmd    *exec.Cmd
	stdout io.Reader
}

func (h *realStreamHandle) Stdout() io.Reader {
	return h.stdout
}

func (h *realStreamHandle) Wait() error {
	return h.cmd.Wait()
}

// MockResponse defines the response for a mocked command.
type MockResponse struct {
	Stdout []byte
	Err    error
}

// CommandMatcher is a function that determines if a command matches.
type CommandMatcher func(name string, args []string) bool

// MockRule defines a matching rule and its response.
type MockRule struct {
	Match    CommandMatcher
	Response MockResponse
}

// MockCall records a command invocation for verification.
type MockCall struct {
	Mode string // "output", "interactive", or "stream"
	Name string
	Args []string
}

// MockExecutor returns pre-recorded responses for commands.
// Rules are matched in registration order.
type MockExecutor struct {
	mu      sync.RWMutex
	rules   []MockRule
	calls   []MockCall
	missing bool // LookPath result is !missing
}

// NewMockExecutor creates a new MockExecutor. Unmatched commands get an
// empty successful response.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// AddRule adds a matching rule with its response.
func (e *MockExecutor) AddRule(match CommandMatcher, response MockResponse) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, MockRule{Match: match, Response: response})
}

// AddExactMatch adds a rule that matches a specific command exactly.
func (e *MockExecutor) AddExactMatch(name string, args []string, response MockResponse) {
	e.AddRule(func(n string, a []string) bool {
		if n != name || len(a) != len(args) {
			return false
		}
		for i, arg := range args {
			if a[i] != arg {
				return false
			}
		}
		return true
	}, response)
}

// AddPrefixMatch adds a rule that matches commands starting with specific args.
func (e *MockExecutor) AddPrefixMatch(name string, prefixArgs []string, response MockResponse) {
	e.AddRule(func(n string, a []string) bool {
		if n != name || len(a) < len(prefixArgs) {
			return false
		}
		for i, arg := range prefixArgs {
			if a[i] != arg {
				return false
			}
		}
		return true
	}, response)
}

// SetMissing makes LookPath report the binary as absent.
func (e *MockExecutor) SetMissing(missing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.missing = missing
}

// GetCalls returns all recorded command invocations.
func (e *MockExecutor) GetCalls() []MockCall {
	e.mu.RLock()
	defer e.mu.RUnlock()
	calls := make([]MockCall, len(e.calls))
	copy(calls, e.calls)
	return calls
}

// ClearCalls clears the recorded command invocations.
func (e *MockExecutor) ClearCalls() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = nil
}

func (e *MockExecutor) findMatch(name string, args []string) MockResponse {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, rule := range e.rules {
		if rule.Match(name, args) {
			return rule.Response
		}
	}
	return MockResponse{}
}

func (e *MockExecutor) recordCall(mode, name string, args []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, MockCall{Mode: mode, Name: name, Args: args})
}

// Output returns the stdout of the first matching rule.
func (e *MockExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	e.recordCall("output", name, args)
	resp := e.findMatch(name, args)
	return resp.Stdout, resp.Err
}

// Interactive records the call and returns the matched error, if any.
func (e *MockExecutor) Interactive(ctx context.Context, name string, args ...string) error {
	e.recordCall("interactive", name, args)
	return e.findMatch(name, args).Err
}

// Stream returns a handle whose stdout replays the matched response.
func (e *MockExecutor) Stream(ctx context.Context, name string, args ...string) (StreamHandle, error) {
	e.recordCall("stream", name, args)
	resp := e.findMatch(name, args)
	return &mockStreamHandle{
		stdout: bytes.NewReader(resp.Stdout),
		err:    resp.Err,
	}, nil
}

// LookPath reports the configured availability.
func (e *MockExecutor) LookPath(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.missing
}

type mockStreamHandle struct {
	stdout io.Reader
	err    error
}

func (h *mockStreamHandle) Stdout() io.Reader {
	return h.stdout
}

func (h *mockStreamHandle) Wait() error {
	return h.err
}

// Ensure implementations satisfy the interfaces.
var _ CommandExecutor = (*RealExecutor)(nil)
var _ CommandExecutor = (*MockExecutor)(nil)
var _ StreamHandle = (*realStreamHandle)(nil)
var _ StreamHandle = (*mockStreamHandle)(nil)
