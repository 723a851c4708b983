package model

// CombinedRow is one denormalized analysis row per distinct Task ID in the
// worker table. Expert-side fields and the metrics derived from them are
// pointers: nil means no expert rated the task, not zero.
type CombinedRow struct {
	TaskID              string   `csv:"Task ID" json:"task_id"`
	Task                string   `csv:"Task" json:"task"`
	Occupation          string   `csv:"Occupation" json:"occupation"`
	Domain              string   `csv:"Domain" json:"domain"`
	Category            string   `csv:"Task Category" json:"task_category"`
	SOCCode             string   `csv:"O*NET-SOC Code" json:"soc_code"`
	AutomationDesire    float64  `csv:"Automation Desire Rating" json:"automation_desire_rating"`
	DesireStdDev        *float64 `csv:"Automation Desire Std" json:"automation_desire_std,omitempty"`
	WorkerCount         int      `csv:"Worker Count" json:"worker_count"`
	JobSecurity         float64  `csv:"Job Security Rating" json:"job_security_rating"`
	Enjoyment           float64  `csv:"Enjoyment Rating" json:"enjoyment_rating"`
	ExpertCapability    *float64 `csv:"Expert Capability Rating" json:"expert_capability_rating,omitempty"`
	ExpertConfidence    *float64 `csv:"Confidence" json:"expert_confidence,omitempty"`
	AutomationReadiness *float64 `csv:"Automation Readiness" json:"automation_readiness,omitempty"`
	DesireCapabilityGap *float64 `csv:"Desire Capability Gap" json:"desire_capability_gap,omitempty"`
}

// HasExpertData reports whether any expert rated this task.
func (r CombinedRow) HasExpertData() bool {
	return r.ExpertCapability != nil
}

// Float returns a pointer to v. Convenience for building optional fields.
func Float(v float64) *float64 {
	return &v
}
