package stats

import (
	"sort"
	"strconv"
)

// DecadeGroup is one bucket of the season index: a decade label and the
// seasons that fall in it, oldest first.
type DecadeGroup struct {
	Decade  string
	Seasons []string
}

// DecadeOf maps a season label to its decade, e.g. "1876/77" and "1879" both
// yield "1870s". Labels without a leading four-digit year return "".
func DecadeOf(season string) string {
	if len(season) < 4 {
		return ""
	}
	year, err := strconv.Atoi(season[:4])
	if err != nil {
		return ""
	}
	return strconv.Itoa(year/10*10) + "s"
}

// GroupSeasonsByDecade buckets season labels into decades, newest decade
// first. Unparseable labels are dropped.
func GroupSeasonsByDecade(seasons []string) []DecadeGroup {
	buckets := make(map[string][]string)
	for _, s := range seasons {
		d := DecadeOf(s)
		if d == "" {
			continue
		}
		buckets[d] = append(buckets[d], s)
	}

	groups := make([]DecadeGroup, 0, len(buckets))
	for d, ss := range buckets {
		sort.Strings(ss)
		groups = append(groups, DecadeGroup{Decade: d, Seasons: ss})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Decade > groups[j].Decade
	})
	return groups
}
