// Package analysis aggregates and joins the raw WORKBank tables into the
// combined per-task analysis table and computes summary statistics and
// presentation-side views (filtering, sorting, quadrants, histograms) over
// it. All operations are pure: inputs are never mutated.
package analysis

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// workerAgg accumulates one worker group during aggregation.
type workerAgg struct {
	task       string
	occupation string
	domain     string
	desires    []float64
	jobSum     float64
	enjoySum   float64
}

// expertAgg accumulates one expert group during aggregation.
type expertAgg struct {
	capSum  float64
	confSum float64
	n       int
}

// Prepare groups worker responses by task, groups expert ratings by task,
// left-joins worker aggregates with expert aggregates and task metadata,
// and derives automation readiness and the desire-capability gap. The
// worker table drives the join: tasks with no worker response are dropped,
// tasks with no expert rating keep nil expert fields. Output is ordered by
// ascending task identifier.
func Prepare(workers []model.WorkerResponse, experts []model.ExpertRating, tasks []model.TaskMetadata) ([]model.CombinedRow, error) {
	// Group worker responses. Task text, occupation, and domain are assumed
	// constant within a task; the first-seen value is carried forward.
	groups := make(map[string]*workerAgg)
	for i, w := range workers {
		if w.TaskID == "" {
			return nil, eris.Errorf("analysis: worker row %d has empty task identifier", i)
		}
		g, ok := groups[w.TaskID]
		if !ok {
			g = &workerAgg{
				task:       w.Task,
				occupation: w.Occupation,
				domain:     w.Domain,
			}
			groups[w.TaskID] = g
		}
		g.desires = append(g.desires, w.AutomationDesire)
		g.jobSum += w.JobSecurity
		g.enjoySum += w.Enjoyment
	}

	// Group expert ratings.
	expertGroups := make(map[string]*expertAgg)
	for _, e := range experts {
		g, ok := expertGroups[e.TaskID]
		if !ok {
			g = &expertAgg{}
			expertGroups[e.TaskID] = g
		}
		g.capSum += e.Capability
		g.confSum += e.Confidence
		g.n++
	}

	// Metadata lookup. Only occupation code and task category are merged;
	// the worker aggregate already carries the text fields.
	meta := make(map[string]model.TaskMetadata, len(tasks))
	for _, t := range tasks {
		if _, ok := meta[t.TaskID]; !ok {
			meta[t.TaskID] = t
		}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]model.CombinedRow, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		n := len(g.desires)

		row := model.CombinedRow{
			TaskID:           id,
			Task:             g.task,
			Occupation:       g.occupation,
			Domain:           g.domain,
			AutomationDesire: mean(g.desires),
			DesireStdDev:     sampleStdDev(g.desires),
			WorkerCount:      n,
			JobSecurity:      g.jobSum / float64(n),
			Enjoyment:        g.enjoySum / float64(n),
		}

		if e, ok := expertGroups[id]; ok {
			row.ExpertCapability = model.Float(e.capSum / float64(e.n))
			row.ExpertConfidence = model.Float(e.confSum / float64(e.n))
			row.AutomationReadiness = model.Float(math.Min(row.AutomationDesire, *row.ExpertCapability))
			row.DesireCapabilityGap = model.Float(row.AutomationDesire - *row.ExpertCapability)
		}

		if m, ok := meta[id]; ok {
			row.SOCCode = m.SOCCode
			row.Category = m.Category
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStdDev returns the sample standard deviation, or nil for fewer than
// two observations.
func sampleStdDev(xs []float64) *float64 {
	n := len(xs)
	if n < 2 {
		return nil
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return model.Float(math.Sqrt(ss / float64(n-1)))
}
