package leaddto

type IntakeInput struct {
	StudentName  string
	Phone        string
	ReferralCode string
}

type ManualAssignInput struct {
	LeadID  string
	CoachID string
	AdminID string
}
