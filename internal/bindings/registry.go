package bindings

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/kubepick/kubepick/internal/ui/style"
	"github.com/kubepick/kubepick/internal/usage"
)

// TogglePreviewKey is the picker control that shows and hides the
// preview panel. It is reserved and always documented in previews.
const TogglePreviewKey = "ctrl+p"

// reservedTriggers are keys the picker keeps for itself. Registering an
// action on one of these is a configuration error. The default accept
// is addressed by the empty trigger, so the literal word is reserved
// too.
var reservedTriggers = map[string]struct{}{
	TogglePreviewKey: {},
	"ctrl+c":         {},
	"esc":            {},
	"tab":            {},
	"up":             {},
	"down":           {},
	"enter":          {},
}

// Registry maps trigger keys to actions. The picker renders previews
// while the dispatch loop owns the registry, so reads are concurrent;
// writes only happen in the two registration windows before the picker
// starts accepting input.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds an action to the registry. Duplicate and reserved
// triggers are configuration errors, fatal to the caller.
func (r *Registry) Register(action Action) error {
	trigger := action.Trigger()
	if _, reserved := reservedTriggers[trigger]; reserved {
		return usage.ReservedTrigger(trigger)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[trigger]; exists {
		return usage.DuplicateTrigger(trigger)
	}
	r.actions[trigger] = action
	return nil
}

// Lookup returns the action bound to trigger, if any.
func (r *Registry) Lookup(trigger string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.actions[trigger]
	return action, ok
}

// Triggers returns every registered trigger key, sorted.
func (r *Registry) Triggers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	triggers := make([]string, 0, len(r.actions))
	for trigger := range r.actions {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)
	return triggers
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

// PreviewFor renders the bindings preview for resourceType: one line per
// applicable action plus the always-present toggle-preview control,
// sorted lexicographically and tab-aligned into a block.
func (r *Registry) PreviewFor(resourceType string) []string {
	r.mu.RLock()
	lines := make([]string, 0, len(r.actions)+1)
	for _, action := range r.actions {
		if action.AppliesTo(resourceType) {
			lines = append(lines, action.Preview())
		}
	}
	r.mu.RUnlock()

	lines = append(lines, style.Error("Toggle Preview")+"\t"+style.Warning(TogglePreviewKey))
	sort.Strings(lines)
	return tabAlign(lines)
}

// tabAlign pads the tab-separated columns of lines into an aligned block.
func tabAlign(lines []string) []string {
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, line := range lines {
		fmt.Fprintln(tw, line)
	}
	tw.Flush()

	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
