package bindings

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kubepick/kubepick/internal/clipboard"
	"github.com/kubepick/kubepick/internal/domain"
)

// fakeCluster records which cluster verbs were invoked and replays
// canned output.
type fakeCluster struct {
	calls []string

	getOut      string
	describeOut string
	scheduleOut string
	logsPayload string
	err         error

	lastNamespace string
	lastFormat    string
	lastResource  string
	lastNames     []string
}

func (f *fakeCluster) IsAvailable() bool { return true }

func (f *fakeCluster) List(_ context.Context, namespace, resourceType string, _ bool) (domain.Listing, error) {
	f.calls = append(f.calls, "list")
	f.lastNamespace, f.lastResource = namespace, resourceType
	return domain.Listing{}, f.err
}

func (f *fakeCluster) Get(_ context.Context, namespace, format, resourceType string, names []string) (string, error) {
	f.calls = append(f.calls, "get")
	f.lastNamespace, f.lastFormat, f.lastResource, f.lastNames = namespace, format, resourceType, names
	return f.getOut, f.err
}

func (f *fakeCluster) Describe(_ context.Context, namespace, resourceType string, names []string) (string, error) {
	f.calls = append(f.calls, "describe")
	f.lastNamespace, f.lastResource, f.lastNames = namespace, resourceType, names
	return f.describeOut, f.err
}

func (f *fakeCluster) Edit(_ context.Context, namespace, resourceType string, names []string) error {
	f.calls = append(f.calls, "edit")
	f.lastNamespace, f.lastResource, f.lastNames = namespace, resourceType, names
	return f.err
}

func (f *fakeCluster) StreamLogs(_ context.Context, namespace, name string, out io.Writer) error {
	f.calls = append(f.calls, "logs")
	f.lastNamespace, f.lastNames = namespace, []string{name}
	if f.err != nil {
		return f.err
	}
	_, err := out.Write([]byte(f.logsPayload))
	return err
}

func (f *fakeCluster) Cordon(_ context.Context, namespace string, names []string) (string, error) {
	f.calls = append(f.calls, "cordon")
	f.lastNamespace, f.lastNames = namespace, names
	return f.scheduleOut, f.err
}

func (f *fakeCluster) Uncordon(_ context.Context, namespace string, names []string) (string, error) {
	f.calls = append(f.calls, "uncordon")
	f.lastNamespace, f.lastNames = namespace, names
	return f.scheduleOut, f.err
}

var _ domain.ClusterClient = (*fakeCluster)(nil)

func TestNamesExecute(t *testing.T) {
	sel := domain.NewSelection("", "pod", []string{"a Running 1d", "b Pending 2d"})

	out, err := NewNames().Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestNamesExecuteEmptySelection(t *testing.T) {
	sel := domain.NewSelection("", "pod", nil)

	out, err := NewNames().Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCopyExecute(t *testing.T) {
	clip := clipboard.NewMemory()
	sel := domain.NewSelection("", "pod", []string{"a Running 1d", "b Pending 2d"})

	out, err := NewCopy(clip, nil).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Empty(t, out, "copy prints nothing")
	require.Equal(t, "a\nb", clip.Contents)
}

func TestCopyExecuteSwallowsClipboardFailure(t *testing.T) {
	clip := clipboard.NewMemory()
	clip.Err = errors.New("no clipboard service")
	sel := domain.NewSelection("", "pod", []string{"a Running 1d"})

	out, err := NewCopy(clip, nil).Execute(context.Background(), sel)
	require.NoError(t, err, "clipboard failures are best effort")
	require.Empty(t, out)
}

func TestJSONExecute(t *testing.T) {
	cluster := &fakeCluster{getOut: `{"kind":"List"}`}
	sel := domain.NewSelection("default", "pod", []string{"a Running 1d"})

	out, err := NewJSON(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, `{"kind":"List"}`, out)
	require.Equal(t, "json", cluster.lastFormat)
	require.Equal(t, "default", cluster.lastNamespace)
	require.Equal(t, []string{"a"}, cluster.lastNames)
}

func TestYAMLExecute(t *testing.T) {
	cluster := &fakeCluster{getOut: "kind: List\n"}
	sel := domain.NewSelection("", "deployment", []string{"api 2/2 Running"})

	out, err := NewYAML(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "kind: List\n", out)
	require.Equal(t, "yaml", cluster.lastFormat)
	require.Equal(t, "deployment", cluster.lastResource)
}

func TestDescribeExecute(t *testing.T) {
	cluster := &fakeCluster{describeOut: "Name: a\n"}
	sel := domain.NewSelection("default", "pod", []string{"a Running 1d"})

	out, err := NewDescribe(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "Name: a\n", out)
	require.Equal(t, []string{"describe"}, cluster.calls)
}

func TestEditExecute(t *testing.T) {
	cluster := &fakeCluster{}
	sel := domain.NewSelection("default", "configmap", []string{"settings 3 1d"})

	out, err := NewEdit(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Empty(t, out, "edit owns the terminal and prints nothing")
	require.Equal(t, []string{"edit"}, cluster.calls)
}

func TestEditExecuteError(t *testing.T) {
	cluster := &fakeCluster{err: errors.New("editor exited 1")}
	sel := domain.NewSelection("", "pod", []string{"a Running 1d"})

	out, err := NewEdit(cluster).Execute(context.Background(), sel)
	require.Error(t, err)
	require.Empty(t, out)
}

func TestLogsCardinalityMessage(t *testing.T) {
	cluster := &fakeCluster{}
	sel := domain.NewSelection("default", "pod", []string{"a Running 1d", "b Pending 2d"})

	out, err := NewLogs(cluster, io.Discard).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "logs only support a single resource, 2 selected", out)
	require.Empty(t, cluster.calls, "refusal must not touch the cluster")
}

func TestLogsZeroSelected(t *testing.T) {
	cluster := &fakeCluster{}
	sel := domain.NewSelection("", "pod", nil)

	out, err := NewLogs(cluster, io.Discard).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "logs only support a single resource, 0 selected", out)
	require.Empty(t, cluster.calls)
}

func TestLogsSingleSelectionStreams(t *testing.T) {
	cluster := &fakeCluster{logsPayload: "log line 1\nlog line 2\n"}
	sel := domain.NewSelection("default", "pod", []string{"a Running 1d"})

	var buf bytes.Buffer
	out, err := NewLogs(cluster, &buf).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Empty(t, out, "the stream is the output")
	require.Equal(t, "log line 1\nlog line 2\n", buf.String())
	require.Equal(t, []string{"logs"}, cluster.calls)
	require.Equal(t, []string{"a"}, cluster.lastNames)
}

func TestLogsStreamError(t *testing.T) {
	cluster := &fakeCluster{err: errors.New("pod not found")}
	sel := domain.NewSelection("", "pod", []string{"a Running 1d"})

	_, err := NewLogs(cluster, io.Discard).Execute(context.Background(), sel)
	require.Error(t, err)
}

func TestCordonExecute(t *testing.T) {
	cluster := &fakeCluster{scheduleOut: "node/a cordoned\n"}
	sel := domain.NewSelection("", "node", []string{"a Ready 30d"})

	out, err := NewCordon(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "node/a cordoned\n", out)
	require.Equal(t, []string{"cordon"}, cluster.calls)
}

func TestUncordonExecute(t *testing.T) {
	cluster := &fakeCluster{scheduleOut: "node/a uncordoned\n"}
	sel := domain.NewSelection("", "node", []string{"a Ready,SchedulingDisabled 30d"})

	out, err := NewUncordon(cluster).Execute(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, "node/a uncordoned\n", out)
	require.Equal(t, []string{"uncordon"}, cluster.calls)
}

func TestNewBuiltinRegistry(t *testing.T) {
	reg, err := NewBuiltinRegistry(Deps{
		Cluster:   &fakeCluster{},
		Clipboard: clipboard.NewMemory(),
		Out:       io.Discard,
	})
	require.NoError(t, err)
	require.Equal(t, 9, reg.Len())

	for _, trigger := range []string{"", "ctrl+n", "ctrl+j", "ctrl+y", "ctrl+d", "ctrl+e", "ctrl+l", "ctrl+k", "ctrl+u"} {
		action, ok := reg.Lookup(trigger)
		require.True(t, ok, "trigger %q must be registered", trigger)
		require.Equal(t, trigger, action.Trigger())
	}
}

func TestBuiltinRegistryGating(t *testing.T) {
	reg, err := NewBuiltinRegistry(Deps{
		Cluster:   &fakeCluster{},
		Clipboard: clipboard.NewMemory(),
		Out:       io.Discard,
	})
	require.NoError(t, err)

	cordon, ok := reg.Lookup("ctrl+k")
	require.True(t, ok)
	require.False(t, cordon.AppliesTo("pod"))
	require.True(t, cordon.AppliesTo("node"))

	logs, ok := reg.Lookup("ctrl+l")
	require.True(t, ok)
	require.True(t, logs.AppliesTo("pod"))
	require.False(t, logs.AppliesTo("node"))
}
