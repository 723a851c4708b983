// Package model defines the typed records shared across the WORKBank
// pipeline: raw survey rows as they appear in the dataset resources,
// the combined per-task analysis row, and summary statistics.
package model

// Rating bounds for all survey scales.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// WorkerResponse is one worker-task survey row. Task ID is not unique in
// this table: multiple workers may rate the same task.
type WorkerResponse struct {
	TaskID           string  `csv:"Task ID" json:"task_id"`
	Task             string  `csv:"Task" json:"task"`
	Occupation       string  `csv:"Occupation (O*NET-SOC Title)" json:"occupation"`
	Domain           string  `csv:"Domain" json:"domain"`
	AutomationDesire float64 `csv:"Automation Desire Rating" json:"automation_desire_rating"`
	JobSecurity      float64 `csv:"Job Security Rating" json:"job_security_rating"`
	Enjoyment        float64 `csv:"Enjoyment Rating" json:"enjoyment_rating"`
	WorkerID         string  `csv:"Worker ID" json:"worker_id"`
}

// ExpertRating is one expert-task assessment row. Task ID is not unique:
// multiple experts may rate the same task.
type ExpertRating struct {
	TaskID     string  `csv:"Task ID" json:"task_id"`
	Task       string  `csv:"Task" json:"task"`
	Capability float64 `csv:"Expert Capability Rating" json:"expert_capability_rating"`
	ExpertID   string  `csv:"Expert ID" json:"expert_id"`
	Confidence float64 `csv:"Confidence" json:"confidence"`
}

// TaskMetadata is the per-task reference row. Task ID is unique here.
type TaskMetadata struct {
	TaskID     string `csv:"Task ID" json:"task_id"`
	Task       string `csv:"Task" json:"task"`
	Occupation string `csv:"Occupation (O*NET-SOC Title)" json:"occupation"`
	SOCCode    string `csv:"O*NET-SOC Code" json:"soc_code"`
	Domain     string `csv:"Domain" json:"domain"`
	Category   string `csv:"Task Category" json:"task_category"`
}

// RawTables bundles the three dataset resources. All downstream consumers
// treat the tables as immutable once loaded.
type RawTables struct {
	Workers []WorkerResponse `json:"workers"`
	Experts []ExpertRating   `json:"experts"`
	Tasks   []TaskMetadata   `json:"tasks"`
}

// InRatingRange reports whether v lies on the 1.0-5.0 survey scale.
func InRatingRange(v float64) bool {
	return v >= RatingMin && v <= RatingMax
}
