package model

// Stats holds dashboard-level summary statistics over the combined table.
// Means are computed field-wise over rows where the input is present, so a
// table with no expert coverage yields zero means rather than an error.
type Stats struct {
	TotalTasks             int     `json:"total_tasks" yaml:"total_tasks"`
	TotalWorkers           int     `json:"total_workers" yaml:"total_workers"`
	AvgAutomationDesire    float64 `json:"avg_automation_desire" yaml:"avg_automation_desire"`
	AvgExpertCapability    float64 `json:"avg_expert_capability" yaml:"avg_expert_capability"`
	AvgAutomationReadiness float64 `json:"avg_automation_readiness" yaml:"avg_automation_readiness"`
	UniqueOccupations      int     `json:"unique_occupations" yaml:"unique_occupations"`
	UniqueDomains          int     `json:"unique_domains" yaml:"unique_domains"`
}

// DesireCapabilityGap is the table-level gap between what workers want
// automated and what experts think AI can do.
func (s Stats) DesireCapabilityGap() float64 {
	return s.AvgAutomationDesire - s.AvgExpertCapability
}
