package values

import (
	"sort"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

type isoWeek struct {
	year int
	week int
}

// Sample downsamples a value series to at most one point per ISO week,
// keeping the earliest point of each week. Points before from are dropped;
// a zero from keeps everything. The input is not modified.
func Sample(points []models.ValuePoint, from time.Time) []models.ValuePoint {
	kept := make([]models.ValuePoint, 0, len(points))
	for _, p := range points {
		if !from.IsZero() && p.Date.Before(from) {
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})

	seen := make(map[isoWeek]struct{}, len(kept))
	sampled := kept[:0]
	for _, p := range kept {
		y, w := p.Date.ISOWeek()
		k := isoWeek{year: y, week: w}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		sampled = append(sampled, p)
	}
	return sampled
}

// Series converts sampled points to their wire shape.
func Series(points []models.ValuePoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.SeriesPoint{Date: p.DateString(), Value: p.Value})
	}
	return out
}
