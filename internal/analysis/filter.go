package analysis

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// FilterOptions narrows the combined table for display and export.
// Zero values leave the corresponding dimension unfiltered.
type FilterOptions struct {
	Domains     []string
	Occupations []string
	MinDesire   float64
	MaxDesire   float64
	Search      string // case-insensitive substring match on task text
}

// Filter returns the rows matching opts. The input slice is not modified.
func Filter(rows []model.CombinedRow, opts FilterOptions) []model.CombinedRow {
	domains := toSet(opts.Domains)
	occupations := toSet(opts.Occupations)
	search := strings.ToLower(opts.Search)

	out := make([]model.CombinedRow, 0, len(rows))
	for _, r := range rows {
		if len(domains) > 0 && !domains[r.Domain] {
			continue
		}
		if len(occupations) > 0 && !occupations[r.Occupation] {
			continue
		}
		if opts.MinDesire > 0 && r.AutomationDesire < opts.MinDesire {
			continue
		}
		if opts.MaxDesire > 0 && r.AutomationDesire > opts.MaxDesire {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Task), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// SortKey identifies a sortable combined-table column.
type SortKey string

const (
	SortDesire      SortKey = "desire"
	SortCapability  SortKey = "capability"
	SortReadiness   SortKey = "readiness"
	SortGap         SortKey = "gap"
	SortWorkerCount SortKey = "workers"
)

// ParseSortKey maps a user-supplied sort name to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(s)) {
	case SortDesire, SortCapability, SortReadiness, SortGap, SortWorkerCount:
		return SortKey(strings.ToLower(s)), nil
	default:
		return "", eris.Errorf("analysis: unknown sort key %q", s)
	}
}

// SortRows returns a copy of rows ordered by the given key. Rows missing
// the sort field (no expert data) order after rows that have it; ties keep
// the incoming task-identifier order.
func SortRows(rows []model.CombinedRow, key SortKey, descending bool) []model.CombinedRow {
	out := make([]model.CombinedRow, len(rows))
	copy(out, rows)

	value := func(r model.CombinedRow) (float64, bool) {
		switch key {
		case SortDesire:
			return r.AutomationDesire, true
		case SortCapability:
			return deref(r.ExpertCapability)
		case SortReadiness:
			return deref(r.AutomationReadiness)
		case SortGap:
			return deref(r.DesireCapabilityGap)
		case SortWorkerCount:
			return float64(r.WorkerCount), true
		default:
			return 0, false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := value(out[i])
		vj, okj := value(out[j])
		if oki != okj {
			return oki // present sorts before absent
		}
		if !oki {
			return false
		}
		if descending {
			return vi > vj
		}
		return vi < vj
	})

	return out
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// DefaultQuadrantThreshold splits the desire/capability plane into the
// quadrants used by the viability view.
const DefaultQuadrantThreshold = 3.5

// QuadrantSummary partitions tasks by worker desire and expert capability.
// Ready: both at or above the threshold. Wanted: workers want automation
// the experts say AI cannot yet deliver. Tasks without expert data are
// counted in neither quadrant.
type QuadrantSummary struct {
	Threshold float64             `json:"threshold"`
	Ready     []model.CombinedRow `json:"ready"`
	Wanted    []model.CombinedRow `json:"wanted"`
}

// Quadrants computes the viability quadrants at the given threshold.
func Quadrants(rows []model.CombinedRow, threshold float64) QuadrantSummary {
	if threshold <= 0 {
		threshold = DefaultQuadrantThreshold
	}
	summary := QuadrantSummary{Threshold: threshold}
	for _, r := range rows {
		if r.ExpertCapability == nil {
			continue
		}
		switch {
		case r.AutomationDesire >= threshold && *r.ExpertCapability >= threshold:
			summary.Ready = append(summary.Ready, r)
		case r.AutomationDesire >= threshold:
			summary.Wanted = append(summary.Wanted, r)
		}
	}
	return summary
}

// HistogramBin is one bucket of the desire distribution.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram buckets automation desire over the 1-5 rating scale. Values at
// the top of the scale land in the last bin.
func Histogram(rows []model.CombinedRow, bins int) []HistogramBin {
	if bins <= 0 {
		bins = 8
	}
	width := (model.RatingMax - model.RatingMin) / float64(bins)

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = model.RatingMin + float64(i)*width
		out[i].High = out[i].Low + width
	}
	for _, r := range rows {
		idx := int((r.AutomationDesire - model.RatingMin) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out
}
