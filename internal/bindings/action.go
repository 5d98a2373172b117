// Package bindings defines the actions a picker key can dispatch and the
// registry that maps trigger keys to them.
package bindings

import (
	"context"

	"github.com/kubepick/kubepick/internal/domain"
)

// defaultAcceptLabel is the key label shown in previews for the empty
// trigger.
const defaultAcceptLabel = "enter"

// Action is a resource-type-gated unit of work bound to a picker key.
type Action interface {
	// Trigger is the key that invokes the action, in the picker's key
	// notation. The empty string is reserved for plain accept.
	Trigger() string

	// Description is the short label used in previews and in resource
	// type mismatch messages.
	Description() string

	// AcceptedResourceTypes lists the resource type aliases the action
	// works for. Empty means the action is universal.
	AcceptedResourceTypes() []string

	// AppliesTo reports whether the action works for resourceType.
	AppliesTo(resourceType string) bool

	// Execute runs the action against the selection. A non-empty result
	// is printed verbatim to stdout; empty means the action produced
	// nothing for stdout.
	Execute(ctx context.Context, sel domain.Selection) (string, error)

	// Preview renders the action's "description<TAB>key" line for the
	// bindings preview panel.
	Preview() string
}

// meta implements the identity half of Action for the built-in actions.
type meta struct {
	trigger     string
	description string
	resources   []string
}

func (m meta) Trigger() string                 { return m.trigger }
func (m meta) Description() string             { return m.description }
func (m meta) AcceptedResourceTypes() []string { return m.resources }

func (m meta) AppliesTo(resourceType string) bool {
	if len(m.resources) == 0 {
		return true
	}
	for _, rt := range m.resources {
		if rt == resourceType {
			return true
		}
	}
	return false
}

func (m meta) Preview() string {
	key := m.trigger
	if key == "" {
		key = defaultAcceptLabel
	}
	return m.description + "\t" + key
}

// Resource type aliases accepted by the gated built-ins. These mirror
// the spellings kubectl itself accepts.
var (
	podResourceTypes  = []string{"pod", "pods", "po"}
	nodeResourceTypes = []string{"node", "nodes", "no"}
)
