package kafka

type AssignmentEvent struct {
	LeadID         string `json:"lead_id"`
	CoachID        string `json:"coach_id,omitempty"`
	AssignmentType string `json:"assignment_type"`
	AssignedBy     string `json:"assigned_by"`
}

type PayoutBatchEvent struct {
	BatchID         string `json:"batch_id"`
	PeriodKey       string `json:"period_key"`
	LineCount       int    `json:"line_count"`
	TotalGrossPaise int64  `json:"total_gross_paise"`
	TotalNetPaise   int64  `json:"total_net_paise"`
}

type ClawbackEvent struct {
	ClawbackID   string `json:"clawback_id"`
	EnrollmentID string `json:"enrollment_id"`
	CoachID      string `json:"coach_id"`
	AmountPaise  int64  `json:"amount_paise"`
	Reason       string `json:"reason"`
}
