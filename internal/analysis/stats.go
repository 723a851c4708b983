package analysis

import (
	"github.com/salt-nlp/workbank-cli/internal/model"
)

// Summarize computes dashboard summary statistics over the combined table.
// Means skip rows where the input field is absent rather than failing, so
// partial expert coverage degrades the averages, not the call.
func Summarize(rows []model.CombinedRow) model.Stats {
	stats := model.Stats{TotalTasks: len(rows)}

	occupations := make(map[string]bool)
	domains := make(map[string]bool)

	var desireSum float64
	var capSum, readySum float64
	var capN, readyN int

	for _, r := range rows {
		stats.TotalWorkers += r.WorkerCount
		desireSum += r.AutomationDesire
		if r.ExpertCapability != nil {
			capSum += *r.ExpertCapability
			capN++
		}
		if r.AutomationReadiness != nil {
			readySum += *r.AutomationReadiness
			readyN++
		}
		if r.Occupation != "" {
			occupations[r.Occupation] = true
		}
		if r.Domain != "" {
			domains[r.Domain] = true
		}
	}

	if len(rows) > 0 {
		stats.AvgAutomationDesire = desireSum / float64(len(rows))
	}
	if capN > 0 {
		stats.AvgExpertCapability = capSum / float64(capN)
	}
	if readyN > 0 {
		stats.AvgAutomationReadiness = readySum / float64(readyN)
	}
	stats.UniqueOccupations = len(occupations)
	stats.UniqueDomains = len(domains)

	return stats
}
