package planner

import (
	"fmt"
	"sort"
	"strconv"
)

// PriorityNone is the Thunderdome priority meaning "no priority".
const PriorityNone = 99

// allowedPriorities are the priority values Thunderdome accepts.
var allowedPriorities = map[int]struct{}{
	1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}, PriorityNone: {},
}

// LabelPriority maps one GitLab label to one Thunderdome priority.
type LabelPriority struct {
	Label    string
	Priority int
}

// LabelPriorities is an ordered label-to-priority mapping, ascending by
// priority. The order determines precedence: when an issue carries several
// mapped labels, the first entry whose label is present wins.
type LabelPriorities []LabelPriority

// ParseLabelPriorities parses a flattened list of label/priority pairs, for
// example ["prio::high", "1", "prio::medium", "2"]. A label listed twice
// keeps its last priority. The result is sorted ascending by priority.
func ParseLabelPriorities(pairs []string) (LabelPriorities, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrLabelPriorityPairs
	}

	order := make([]string, 0, len(pairs)/2)
	byLabel := make(map[string]int, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		label := pairs[i]
		priority, err := strconv.Atoi(pairs[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, pairs[i+1])
		}
		if _, ok := allowedPriorities[priority]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, priority)
		}

		if _, seen := byLabel[label]; !seen {
			order = append(order, label)
		}
		byLabel[label] = priority
	}

	result := make(LabelPriorities, 0, len(order))
	for _, label := range order {
		result = append(result, LabelPriority{Label: label, Priority: byLabel[label]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result, nil
}

// PriorityFor scans the entries in ascending-priority order and returns the
// priority of the first entry whose label is present; the scan stops at the
// first match. Without a match the result is PriorityNone.
func (lp LabelPriorities) PriorityFor(labels []string) int {
	for _, entry := range lp {
		for _, label := range labels {
			if label == entry.Label {
				return entry.Priority
			}
		}
	}
	return PriorityNone
}
