package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

func TestSummarize_Totals(t *testing.T) {
	rows := []model.CombinedRow{
		{TaskID: "T001", Occupation: "A", Domain: "X", WorkerCount: 2, AutomationDesire: 4.0, ExpertCapability: model.Float(3.0), AutomationReadiness: model.Float(3.0)},
		{TaskID: "T002", Occupation: "B", Domain: "X", WorkerCount: 3, AutomationDesire: 2.0, ExpertCapability: model.Float(4.0), AutomationReadiness: model.Float(2.0)},
		{TaskID: "T003", Occupation: "A", Domain: "Y", WorkerCount: 1, AutomationDesire: 3.0},
	}

	stats := Summarize(rows)

	assert.Equal(t, len(rows), stats.TotalTasks)
	assert.Equal(t, 6, stats.TotalWorkers)
	assert.InDelta(t, 3.0, stats.AvgAutomationDesire, 1e-9)
	// Capability and readiness means skip the row with no expert data.
	assert.InDelta(t, 3.5, stats.AvgExpertCapability, 1e-9)
	assert.InDelta(t, 2.5, stats.AvgAutomationReadiness, 1e-9)
	assert.Equal(t, 2, stats.UniqueOccupations)
	assert.Equal(t, 2, stats.UniqueDomains)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	assert.Zero(t, stats.TotalTasks)
	assert.Zero(t, stats.TotalWorkers)
	assert.Zero(t, stats.AvgAutomationDesire)
	assert.Zero(t, stats.AvgExpertCapability)
}

func TestSummarize_NoExpertCoverage(t *testing.T) {
	rows := []model.CombinedRow{
		{TaskID: "T001", WorkerCount: 1, AutomationDesire: 4.0},
	}
	stats := Summarize(rows)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Zero(t, stats.AvgExpertCapability)
	assert.Zero(t, stats.AvgAutomationReadiness)
}

func TestStatsDesireCapabilityGap(t *testing.T) {
	stats := model.Stats{AvgAutomationDesire: 3.8, AvgExpertCapability: 3.1}
	assert.InDelta(t, 0.7, stats.DesireCapabilityGap(), 1e-9)
}

func TestSummarize_MatchesPreparedTable(t *testing.T) {
	workers := []model.WorkerResponse{
		workerRow("T001", "W001", 4.0, 3.0, 3.0),
		workerRow("T001", "W002", 5.0, 3.0, 3.0),
		workerRow("T002", "W003", 2.0, 3.0, 3.0),
	}

	rows, err := Prepare(workers, nil, nil)
	require.NoError(t, err)

	stats := Summarize(rows)
	assert.Equal(t, len(rows), stats.TotalTasks)

	var workerSum int
	for _, r := range rows {
		workerSum += r.WorkerCount
	}
	assert.Equal(t, workerSum, stats.TotalWorkers)
	assert.Equal(t, len(workers), stats.TotalWorkers)
}
