package report

import "sort"

// SortResults moves failures first, then unchecked cases, keeping suite
// order within each status.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Status.order() < results[j].Status.order()
	})
}
