//go:build unit

package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabelPriorities(t *testing.T) {
	for _, tt := range []struct {
		name     string
		pairs    []string
		expected LabelPriorities
		err      error
	}{
		{
			name:     "empty",
			pairs:    nil,
			expected: LabelPriorities{},
		},
		{
			name:  "single pair",
			pairs: []string{"bug", "1"},
			expected: LabelPriorities{
				{Label: "bug", Priority: 1},
			},
		},
		{
			name:  "sorted ascending by priority",
			pairs: []string{"chore", "5", "bug", "1", "feature", "3"},
			expected: LabelPriorities{
				{Label: "bug", Priority: 1},
				{Label: "feature", Priority: 3},
				{Label: "chore", Priority: 5},
			},
		},
		{
			name:  "duplicate label keeps last priority",
			pairs: []string{"bug", "4", "bug", "2"},
			expected: LabelPriorities{
				{Label: "bug", Priority: 2},
			},
		},
		{
			name:  "explicit lowest priority",
			pairs: []string{"icebox", "99"},
			expected: LabelPriorities{
				{Label: "icebox", Priority: 99},
			},
		},
		{
			name:  "odd number of arguments",
			pairs: []string{"bug", "1", "chore"},
			err:   ErrLabelPriorityPairs,
		},
		{
			name:  "non-integer priority",
			pairs: []string{"bug", "high"},
			err:   ErrInvalidPriority,
		},
		{
			name:  "priority outside the allowed set",
			pairs: []string{"bug", "7"},
			err:   ErrInvalidPriority,
		},
		{
			name:  "zero priority",
			pairs: []string{"bug", "0"},
			err:   ErrInvalidPriority,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			priorities, err := ParseLabelPriorities(tt.pairs)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, priorities)
		})
	}
}

func TestLabelPriorities_PriorityFor(t *testing.T) {
	priorities := LabelPriorities{
		{Label: "bug", Priority: 1},
		{Label: "feature", Priority: 3},
		{Label: "chore", Priority: 5},
	}

	for _, tt := range []struct {
		name     string
		labels   []string
		expected int
	}{
		{
			name:     "single match",
			labels:   []string{"feature"},
			expected: 3,
		},
		{
			name:     "first configured match wins",
			labels:   []string{"chore", "bug"},
			expected: 1,
		},
		{
			name:     "no match falls back to lowest priority",
			labels:   []string{"docs"},
			expected: PriorityNone,
		},
		{
			name:     "no labels",
			labels:   nil,
			expected: PriorityNone,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, priorities.PriorityFor(tt.labels))
		})
	}
}
