package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tutorstack/settlement-service/internal/domain"
	enrollmentdto "github.com/tutorstack/settlement-service/internal/usecase/dto/enrollment"
	"github.com/tutorstack/settlement-service/internal/usecase/split"
)

type CaptureHandler struct {
	uc *split.DefaultSplitUsecase
}

func NewCaptureHandler(uc *split.DefaultSplitUsecase) *CaptureHandler {
	return &CaptureHandler{uc: uc}
}

type captureReq struct {
	LeadID         string `json:"lead_id"`
	GrossPaise     int64  `json:"gross_paise"`
	DeductionPaise int64  `json:"deduction_paise"`
}

type captureResp struct {
	EnrollmentID   string `json:"enrollment_id"`
	NetBasePaise   int64  `json:"net_base_paise"`
	PlatformPaise  int64  `json:"platform_paise"`
	CoachPaise     int64  `json:"coach_paise"`
	LeadBonusPaise int64  `json:"lead_bonus_paise"`
	PolicyVersion  int    `json:"policy_version"`
	SourceType     string `json:"source_type"`
}

// Capture is called by the payment collaborator after a successful
// charge. It freezes the lead source and computes the split.
func (h *CaptureHandler) Capture(c echo.Context) error {
	var req captureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	out, err := h.uc.CaptureEnrollment(&enrollmentdto.CaptureInput{
		LeadID:         req.LeadID,
		GrossPaise:     req.GrossPaise,
		DeductionPaise: req.DeductionPaise,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLeadNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrEnrollmentExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrLeadNotAssigned),
			errors.Is(err, domain.ErrPolicyNotFound),
			errors.Is(err, domain.ErrInvalidSplitConfig),
			errors.Is(err, split.ErrDeductionsExceedGross):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, captureResp{
		EnrollmentID:   out.EnrollmentID,
		NetBasePaise:   out.NetBasePaise,
		PlatformPaise:  out.PlatformPaise,
		CoachPaise:     out.CoachPaise,
		LeadBonusPaise: out.LeadBonusPaise,
		PolicyVersion:  out.PolicyVersion,
		SourceType:     string(out.SourceType),
	})
}

type explainResp struct {
	EnrollmentID   string `json:"enrollment_id"`
	LeadID         string `json:"lead_id"`
	CoachID        string `json:"coach_id"`
	GrossPaise     int64  `json:"gross_paise"`
	DeductionPaise int64  `json:"deduction_paise"`
	NetBasePaise   int64  `json:"net_base_paise"`
	PlatformPaise  int64  `json:"platform_paise"`
	CoachPaise     int64  `json:"coach_paise"`
	LeadBonusPaise int64  `json:"lead_bonus_paise"`
	PolicyVersion  int    `json:"policy_version"`
	SourceType     string `json:"source_type"`
	SourceCoachID  string `json:"source_coach_id,omitempty"`
	Disputed       bool   `json:"disputed"`
	CapturedAt     string `json:"captured_at"`
}

// Explain replays an enrollment's split under its frozen policy
// version, for support and audit lookups.
func (h *CaptureHandler) Explain(c echo.Context) error {
	out, err := h.uc.ExplainEnrollment(c.Param("enrollment_id"))
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) || errors.Is(err, domain.ErrPolicyNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, explainResp{
		EnrollmentID:   out.EnrollmentID,
		LeadID:         out.LeadID,
		CoachID:        out.CoachID,
		GrossPaise:     out.GrossPaise,
		DeductionPaise: out.DeductionPaise,
		NetBasePaise:   out.NetBasePaise,
		PlatformPaise:  out.PlatformPaise,
		CoachPaise:     out.CoachPaise,
		LeadBonusPaise: out.LeadBonusPaise,
		PolicyVersion:  out.PolicyVersion,
		SourceType:     string(out.SourceType),
		SourceCoachID:  out.SourceCoachID,
		Disputed:       out.Disputed,
		CapturedAt:     out.CapturedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
