package planner

import "sort"

// IssueIndex maps issue IDs to their canonical web URLs. It is a
// deduplication set, not a sequence: the same ID always maps to the same URL,
// so inserting an issue twice is idempotent.
type IssueIndex map[int]string

// Merge inserts every entry of other into the index.
func (idx IssueIndex) Merge(other IssueIndex) {
	for id, link := range other {
		idx[id] = link
	}
}

// SubtractLinks returns a new index without the entries whose URL appears in
// links. The difference is keyed by URL, not ID, since board plans only carry
// links.
func (idx IssueIndex) SubtractLinks(links []string) IssueIndex {
	known := make(map[string]struct{}, len(links))
	for _, link := range links {
		known[link] = struct{}{}
	}

	residual := make(IssueIndex)
	for id, link := range idx {
		if _, ok := known[link]; !ok {
			residual[id] = link
		}
	}
	return residual
}

// SortedIDs returns the issue IDs in ascending order, giving map iteration a
// stable order.
func (idx IssueIndex) SortedIDs() []int {
	ids := make([]int, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
