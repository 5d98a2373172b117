package bindings

import (
	"context"
	"fmt"
	"strings"

	"github.com/kubepick/kubepick/internal/domain"
)

// columnAction returns one listing column for every selected row. It
// computes purely from the columns captured at selection time and never
// calls back into the cluster.
type columnAction struct {
	meta
	column int // 1-based position within the header tokens
}

// NewColumn creates the synthesized action for a 1-based header column.
// The trigger encodes the column position as a function key.
func NewColumn(column int, name string) Action {
	return &columnAction{
		meta:   meta{trigger: fmt.Sprintf("f%d", column), description: name},
		column: column,
	}
}

func (a *columnAction) Execute(_ context.Context, sel domain.Selection) (string, error) {
	values := make([]string, 0, len(sel.Columns))
	for _, cols := range sel.Columns {
		// Rows narrower than the column are skipped, not padded.
		if a.column > len(cols) {
			continue
		}
		values = append(values, cols[a.column-1])
	}
	return strings.Join(values, "\n"), nil
}

// RegisterColumns synthesizes one action per header column beyond the
// first (the identifier column, already covered by Names) and registers
// them. maxColumns caps how far the function keys reach; columns past
// the cap get no binding.
func RegisterColumns(reg *Registry, header string, maxColumns int) error {
	tokens := strings.Fields(header)
	limit := len(tokens)
	if maxColumns < limit {
		limit = maxColumns
	}
	for i := 2; i <= limit; i++ {
		if err := reg.Register(NewColumn(i, tokens[i-1])); err != nil {
			return err
		}
	}
	return nil
}
