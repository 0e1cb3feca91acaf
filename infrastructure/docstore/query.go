package docstore

import (
	"sort"
	"strings"

	"github.com/AzielCF/az-learn/domains/remote"
)

// compareDocs orders by the query field then by id, honoring direction.
func compareDocs(q remote.Query, a, b remote.Document) int {
	c := remote.Compare(a.Value(q.OrderBy), b.Value(q.OrderBy))
	if c == 0 {
		c = strings.Compare(a.ID, b.ID)
	}
	if q.Direction == remote.Desc {
		return -c
	}
	return c
}

// applyQuery filters, sorts, continues after the cursor and limits docs in memory.
func applyQuery(q remote.Query, docs []remote.Document) []remote.Document {
	matched := docs[:0]
	for _, d := range docs {
		ok := true
		for _, f := range q.Filters {
			if !f.Matches(d.Value(f.Field)) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, d)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return compareDocs(q, matched[i], matched[j]) < 0
	})

	if q.StartAfter != nil {
		cursor := *q.StartAfter
		idx := sort.Search(len(matched), func(i int) bool {
			return compareDocs(q, matched[i], cursor) > 0
		})
		matched = matched[idx:]
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched
}
