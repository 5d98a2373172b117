package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSelection(t *testing.T) {
	rows := []string{
		"a Running 1d",
		"b Pending 2d",
	}

	sel := NewSelection("default", "pod", rows)

	require.Equal(t, "default", sel.Namespace)
	require.Equal(t, "pod", sel.ResourceType)
	require.Equal(t, []string{"a", "b"}, sel.Names)
	require.Equal(t, [][]string{
		{"a", "Running", "1d"},
		{"b", "Pending", "2d"},
	}, sel.Columns)
}

func TestNewSelectionLengthsMatch(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"single", []string{"web-0 Running 1d"}},
		{"many", []string{"a 1", "b 2", "c 3", "d 4"}},
		{"ragged", []string{"a b c", "d", "e f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection("", "pod", tt.rows)

			require.Len(t, sel.Names, len(tt.rows))
			require.Len(t, sel.Columns, len(tt.rows))
			for i := range sel.Columns {
				if len(sel.Columns[i]) > 0 {
					require.Equal(t, sel.Names[i], sel.Columns[i][0])
				}
			}
		})
	}
}

func TestNewSelectionPreservesOrder(t *testing.T) {
	rows := []string{"zeta 1", "alpha 2", "mid 3"}

	sel := NewSelection("", "node", rows)

	require.Equal(t, []string{"zeta", "alpha", "mid"}, sel.Names)
}

func TestListingEmpty(t *testing.T) {
	require.True(t, Listing{Header: "NAME"}.Empty())
	require.False(t, Listing{Header: "NAME", Lines: []string{"a"}}.Empty())
}
