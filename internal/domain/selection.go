package domain

import (
	"strings"
	"time"
)

// Listing is the buffered output of one resource listing: the header line
// and the remaining data lines, in the order the command produced them.
type Listing struct {
	Header string
	Lines  []string
}

// Empty reports whether the listing has no data lines.
func (l Listing) Empty() bool {
	return len(l.Lines) == 0
}

// Selection is the immutable snapshot handed to an action: what was picked
// and where it came from. Built fresh for every dispatch, never persisted.
type Selection struct {
	Namespace    string     // empty means no namespace scoping
	ResourceType string     // the alias used in the listing command, e.g. "pod"
	Names        []string   // first whitespace token of each selected row
	Columns      [][]string // whitespace-split tokens of each selected row
}

// NewSelection projects raw selected rows into a Selection. Row order is
// preserved; each row is split on whitespace and its first token becomes
// the resource name. len(Names) == len(Columns) always holds.
func NewSelection(namespace, resourceType string, rows []string) Selection {
	names := make([]string, 0, len(rows))
	columns := make([][]string, 0, len(rows))

	for _, row := range rows {
		tokens := strings.Fields(row)
		name := ""
		if len(tokens) > 0 {
			name = tokens[0]
		}
		names = append(names, name)
		columns = append(columns, tokens)
	}

	return Selection{
		Namespace:    namespace,
		ResourceType: resourceType,
		Names:        names,
		Columns:      columns,
	}
}

// Count returns the number of selected rows.
func (s Selection) Count() int {
	return len(s.Names)
}

// DispatchRecord is one executed dispatch as stored in history.
type DispatchRecord struct {
	ID           string
	CreatedAt    time.Time
	Namespace    string
	ResourceType string
	AcceptKey    string
	Action       string
	Selected     int
}
