package loader

import (
	"github.com/google/uuid"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// FallbackSnapshot returns the built-in table set used when the remote
// dataset is unavailable. The schema matches the remote resources exactly,
// so the transformer never branches on provenance. The set is small but
// representative: five tasks across five domains, task T001 has two worker
// responses to exercise aggregation, and every task appears in all three
// tables to exercise the join.
func FallbackSnapshot(reason string) *Snapshot {
	return &Snapshot{
		ID:     uuid.New().String(),
		Source: SourceFallback,
		Reason: reason,
		Tables: model.RawTables{
			Workers: fallbackWorkers(),
			Experts: fallbackExperts(),
			Tasks:   fallbackTasks(),
		},
	}
}

func fallbackWorkers() []model.WorkerResponse {
	return []model.WorkerResponse{
		{
			TaskID:           "T001",
			Task:             "Create marketing materials and promotional content",
			Occupation:       "Marketing Managers",
			Domain:           "Marketing",
			AutomationDesire: 4.2,
			JobSecurity:      3.1,
			Enjoyment:        3.8,
			WorkerID:         "W001",
		},
		{
			TaskID:           "T002",
			Task:             "Analyze customer feedback and survey responses",
			Occupation:       "Market Research Analysts",
			Domain:           "Research",
			AutomationDesire: 4.7,
			JobSecurity:      2.8,
			Enjoyment:        2.9,
			WorkerID:         "W002",
		},
		{
			TaskID:           "T003",
			Task:             "Schedule appointments and manage calendars",
			Occupation:       "Administrative Assistants",
			Domain:           "Administration",
			AutomationDesire: 4.9,
			JobSecurity:      2.3,
			Enjoyment:        2.1,
			WorkerID:         "W003",
		},
		{
			TaskID:           "T004",
			Task:             "Provide emotional support and counseling to patients",
			Occupation:       "Clinical Social Workers",
			Domain:           "Healthcare",
			AutomationDesire: 1.2,
			JobSecurity:      4.8,
			Enjoyment:        4.9,
			WorkerID:         "W004",
		},
		{
			TaskID:           "T005",
			Task:             "Write and edit technical documentation",
			Occupation:       "Technical Writers",
			Domain:           "Technical",
			AutomationDesire: 3.4,
			JobSecurity:      3.6,
			Enjoyment:        4.1,
			WorkerID:         "W005",
		},
		{
			TaskID:           "T001",
			Task:             "Create marketing materials and promotional content",
			Occupation:       "Marketing Managers",
			Domain:           "Marketing",
			AutomationDesire: 3.8,
			JobSecurity:      3.5,
			Enjoyment:        4.0,
			WorkerID:         "W006",
		},
		{
			TaskID:           "T002",
			Task:             "Analyze customer feedback and survey responses",
			Occupation:       "Market Research Analysts",
			Domain:           "Research",
			AutomationDesire: 4.5,
			JobSecurity:      3.0,
			Enjoyment:        3.2,
			WorkerID:         "W007",
		},
	}
}

func fallbackExperts() []model.ExpertRating {
	return []model.ExpertRating{
		{TaskID: "T001", Task: "Create marketing materials and promotional content", Capability: 3.5, ExpertID: "E001", Confidence: 4.2},
		{TaskID: "T002", Task: "Analyze customer feedback and survey responses", Capability: 4.1, ExpertID: "E002", Confidence: 4.5},
		{TaskID: "T003", Task: "Schedule appointments and manage calendars", Capability: 4.8, ExpertID: "E003", Confidence: 4.9},
		{TaskID: "T004", Task: "Provide emotional support and counseling to patients", Capability: 1.5, ExpertID: "E004", Confidence: 4.7},
		{TaskID: "T005", Task: "Write and edit technical documentation", Capability: 3.8, ExpertID: "E005", Confidence: 4.0},
	}
}

func fallbackTasks() []model.TaskMetadata {
	return []model.TaskMetadata{
		{TaskID: "T001", Task: "Create marketing materials and promotional content", Occupation: "Marketing Managers", SOCCode: "11-2021.00", Domain: "Marketing", Category: "Creative"},
		{TaskID: "T002", Task: "Analyze customer feedback and survey responses", Occupation: "Market Research Analysts", SOCCode: "13-1161.00", Domain: "Research", Category: "Analytical"},
		{TaskID: "T003", Task: "Schedule appointments and manage calendars", Occupation: "Administrative Assistants", SOCCode: "43-6011.00", Domain: "Administration", Category: "Organizational"},
		{TaskID: "T004", Task: "Provide emotional support and counseling to patients", Occupation: "Clinical Social Workers", SOCCode: "21-1022.00", Domain: "Healthcare", Category: "Interpersonal"},
		{TaskID: "T005", Task: "Write and edit technical documentation", Occupation: "Technical Writers", SOCCode: "27-3042.00", Domain: "Technical", Category: "Communication"},
	}
}
