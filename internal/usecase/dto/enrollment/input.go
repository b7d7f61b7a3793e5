package enrollmentdto

type CaptureInput struct {
	LeadID         string
	GrossPaise     int64
	DeductionPaise int64
}
