package stats

import (
	"sort"

	"cricket-stats/internal/domain"
)

// Rank orders records by the chosen sort key and direction and cuts one page.
// The sort is stable, so ties keep their aggregation order, and the total
// qualifying count is returned alongside the page so callers can render
// "X of Y" without a second query.
func Rank[T domain.Ranked](items []T, order domain.SortOrder, dir domain.SortDirection, p domain.PagingParameters) ([]T, int) {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if order == domain.SortByName {
			a, b := ranked[i].SortLabel(), ranked[j].SortLabel()
			if dir == domain.SortAscending {
				return a < b
			}
			return a > b
		}
		a, b := ranked[i].SortValue(order), ranked[j].SortValue(order)
		if dir == domain.SortAscending {
			return a < b
		}
		return a > b
	})

	total := len(ranked)
	start := p.StartRow
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	size := p.PageSize
	if size <= 0 {
		size = p.Limit
	}
	if size <= 0 {
		size = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return ranked[start:end], total
}
