package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

func filterFixture() []model.CombinedRow {
	return []model.CombinedRow{
		{TaskID: "T001", Task: "Create marketing materials", Occupation: "Marketing Managers", Domain: "Marketing", AutomationDesire: 4.0, WorkerCount: 2, ExpertCapability: model.Float(3.5), AutomationReadiness: model.Float(3.5), DesireCapabilityGap: model.Float(0.5)},
		{TaskID: "T002", Task: "Analyze survey responses", Occupation: "Analysts", Domain: "Research", AutomationDesire: 4.6, WorkerCount: 2, ExpertCapability: model.Float(4.1), AutomationReadiness: model.Float(4.1), DesireCapabilityGap: model.Float(0.5)},
		{TaskID: "T003", Task: "Schedule appointments", Occupation: "Assistants", Domain: "Administration", AutomationDesire: 4.9, WorkerCount: 1, ExpertCapability: model.Float(4.8), AutomationReadiness: model.Float(4.8), DesireCapabilityGap: model.Float(0.1)},
		{TaskID: "T004", Task: "Counsel patients", Occupation: "Social Workers", Domain: "Healthcare", AutomationDesire: 1.2, WorkerCount: 1, ExpertCapability: model.Float(1.5), AutomationReadiness: model.Float(1.2), DesireCapabilityGap: model.Float(-0.3)},
		{TaskID: "T005", Task: "Edit documentation", Occupation: "Writers", Domain: "Technical", AutomationDesire: 3.4, WorkerCount: 1},
	}
}

func TestFilter_ByDomain(t *testing.T) {
	rows := Filter(filterFixture(), FilterOptions{Domains: []string{"Marketing", "Research"}})
	require.Len(t, rows, 2)
	assert.Equal(t, "T001", rows[0].TaskID)
	assert.Equal(t, "T002", rows[1].TaskID)
}

func TestFilter_ByDesireRange(t *testing.T) {
	rows := Filter(filterFixture(), FilterOptions{MinDesire: 4.0, MaxDesire: 4.7})
	require.Len(t, rows, 2)
	assert.Equal(t, "T001", rows[0].TaskID)
	assert.Equal(t, "T002", rows[1].TaskID)
}

func TestFilter_BySearch(t *testing.T) {
	rows := Filter(filterFixture(), FilterOptions{Search: "SURVEY"})
	require.Len(t, rows, 1)
	assert.Equal(t, "T002", rows[0].TaskID)
}

func TestFilter_NoOptionsReturnsAll(t *testing.T) {
	fixture := filterFixture()
	rows := Filter(fixture, FilterOptions{})
	assert.Len(t, rows, len(fixture))
}

func TestSortRows_ByDesireDescending(t *testing.T) {
	rows := SortRows(filterFixture(), SortDesire, true)
	assert.Equal(t, "T003", rows[0].TaskID)
	assert.Equal(t, "T004", rows[len(rows)-1].TaskID)
}

func TestSortRows_MissingMetricSortsLast(t *testing.T) {
	rows := SortRows(filterFixture(), SortReadiness, true)
	// T005 has no expert data, so no readiness; it must come last.
	assert.Equal(t, "T005", rows[len(rows)-1].TaskID)
	assert.Equal(t, "T003", rows[0].TaskID)
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	fixture := filterFixture()
	_ = SortRows(fixture, SortDesire, true)
	assert.Equal(t, "T001", fixture[0].TaskID)
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("READINESS")
	require.NoError(t, err)
	assert.Equal(t, SortReadiness, key)

	_, err = ParseSortKey("bogus")
	assert.Error(t, err)
}

func TestQuadrants(t *testing.T) {
	q := Quadrants(filterFixture(), 0)

	assert.InDelta(t, DefaultQuadrantThreshold, q.Threshold, 1e-9)
	// Ready: desire and capability both >= 3.5 (T001, T002, T003).
	require.Len(t, q.Ready, 3)
	// Wanted: high desire, low capability. None in this fixture.
	assert.Empty(t, q.Wanted)
}

func TestQuadrants_WantedBucket(t *testing.T) {
	rows := []model.CombinedRow{
		{TaskID: "T010", AutomationDesire: 4.5, ExpertCapability: model.Float(2.0)},
		{TaskID: "T011", AutomationDesire: 2.0, ExpertCapability: model.Float(4.5)},
		{TaskID: "T012", AutomationDesire: 4.5}, // no expert data: neither bucket
	}
	q := Quadrants(rows, 3.5)
	assert.Empty(t, q.Ready)
	require.Len(t, q.Wanted, 1)
	assert.Equal(t, "T010", q.Wanted[0].TaskID)
}

func TestHistogram(t *testing.T) {
	rows := []model.CombinedRow{
		{AutomationDesire: 1.0},
		{AutomationDesire: 1.1},
		{AutomationDesire: 5.0}, // top of scale lands in the last bin
		{AutomationDesire: 3.0},
	}
	bins := Histogram(rows, 4)
	require.Len(t, bins, 4)

	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 1, bins[2].Count)
	assert.Equal(t, 1, bins[3].Count)

	var total int
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(rows), total)
}
