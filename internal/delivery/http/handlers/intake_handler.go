package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tutorstack/settlement-service/internal/usecase/assignment"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
	"github.com/tutorstack/settlement-service/internal/usecase/intake"
)

type IntakeHandler struct {
	uc *intake.DefaultIntakeUsecase
}

func NewIntakeHandler(uc *intake.DefaultIntakeUsecase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

type createLeadReq struct {
	StudentName  string `json:"student_name"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referral_code"`
}

type assignmentResp struct {
	LeadID         string  `json:"lead_id"`
	AssignmentType string  `json:"assignment_type"`
	CoachID        *string `json:"coach_id"`
	SourceType     string  `json:"source_type"`
}

// CreateLead is the intake collaborator endpoint: attribution first,
// then matching. Ranking stays the default first-eligible here; richer
// heuristics plug in without touching the matcher.
func (h *IntakeHandler) CreateLead(c echo.Context) error {
	var req createLeadReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	outcome, err := h.uc.CreateLead(&leaddto.IntakeInput{
		StudentName:  req.StudentName,
		Phone:        req.Phone,
		ReferralCode: req.ReferralCode,
	}, assignment.FirstEligible, nil)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, toAssignmentResp(outcome))
}

func toAssignmentResp(outcome *leaddto.AssignmentOutcome) assignmentResp {
	return assignmentResp{
		LeadID:         outcome.LeadID,
		AssignmentType: string(outcome.AssignmentType),
		CoachID:        outcome.CoachID,
		SourceType:     string(outcome.SourceType),
	}
}
