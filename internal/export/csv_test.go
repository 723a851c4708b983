package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

func exportFixture() []model.CombinedRow {
	return []model.CombinedRow{
		{
			TaskID:              "T001",
			Task:                "Create marketing materials",
			Occupation:          "Marketing Managers",
			Domain:              "Marketing",
			Category:            "Creative",
			SOCCode:             "11-2021.00",
			AutomationDesire:    4.0,
			DesireStdDev:        model.Float(0.2828),
			WorkerCount:         2,
			JobSecurity:         3.3,
			Enjoyment:           3.9,
			ExpertCapability:    model.Float(3.5),
			ExpertConfidence:    model.Float(4.2),
			AutomationReadiness: model.Float(3.5),
			DesireCapabilityGap: model.Float(0.5),
		},
		{
			// No expert coverage: the optional columns stay empty.
			TaskID:           "T002",
			Task:             "Rewire control panels, with care",
			Occupation:       "Electricians",
			Domain:           "Trades",
			AutomationDesire: 2.1,
			WorkerCount:      1,
			JobSecurity:      4.2,
			Enjoyment:        4.4,
		},
	}
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	header := strings.TrimSpace(buf.String())
	assert.Equal(t,
		"Task ID,Task,Occupation,Domain,Task Category,O*NET-SOC Code,Automation Desire Rating,Automation Desire Std,Worker Count,Job Security Rating,Enjoyment Rating,Expert Capability Rating,Confidence,Automation Readiness,Desire Capability Gap",
		header,
	)
}

func TestCSVRoundTrip(t *testing.T) {
	rows := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(rows))

	assert.Equal(t, rows, parsed)
}

func TestCSVRoundTrip_MissingFieldsStayNil(t *testing.T) {
	rows := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Nil(t, parsed[1].ExpertCapability)
	assert.Nil(t, parsed[1].AutomationReadiness)
	assert.Nil(t, parsed[1].DesireCapabilityGap)
	assert.Nil(t, parsed[1].DesireStdDev)
}

func TestCSVQuotedFieldSurvives(t *testing.T) {
	rows := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	// The comma inside the task text must survive quoting.
	assert.Equal(t, "Rewire control panels, with care", parsed[1].Task)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}
