package model

import "strconv"

// ResolveIndices turns a mixed list of numeric strings and entity display
// names into zero-based ranks against ref, the ordered entity list.
// Numeric strings parse directly and are NOT range-checked here; the sweep
// planner skips out-of-range indices later. Names resolve to the rank of
// their first occurrence in ref, so a duplicated name always addresses the
// earlier entity. An unresolvable name returns EntityNotFoundError.
func ResolveIndices(items []string, ref []string) ([]int, error) {
	indices := make([]int, 0, len(items))
	for _, item := range items {
		if n, err := strconv.Atoi(item); err == nil {
			indices = append(indices, n)
			continue
		}

		found := false
		for i, name := range ref {
			if name == item {
				indices = append(indices, i)
				found = true
				break
			}
		}
		if !found {
			return nil, &EntityNotFoundError{Name: item}
		}
	}
	return indices, nil
}
