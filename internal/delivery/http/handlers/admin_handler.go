package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/usecase/assignment"
	"github.com/tutorstack/settlement-service/internal/usecase/attribution"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
	"github.com/tutorstack/settlement-service/internal/usecase/policy"
)

type AdminHandler struct {
	assignmentUC  *assignment.DefaultAssignmentUsecase
	attributionUC *attribution.DefaultAttributionUsecase
	policyUC      *policy.DefaultPolicyUsecase
}

func NewAdminHandler(
	assignmentUC *assignment.DefaultAssignmentUsecase,
	attributionUC *attribution.DefaultAttributionUsecase,
	policyUC *policy.DefaultPolicyUsecase,
) *AdminHandler {
	return &AdminHandler{assignmentUC: assignmentUC, attributionUC: attributionUC, policyUC: policyUC}
}

type manualAssignReq struct {
	CoachID string `json:"coach_id"`
	AdminID string `json:"admin_id"`
}

func (h *AdminHandler) ManualAssign(c echo.Context) error {
	var req manualAssignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.CoachID == "" || req.AdminID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "coach_id and admin_id are required"})
	}

	outcome, err := h.assignmentUC.ManualAssign(&leaddto.ManualAssignInput{
		LeadID:  c.Param("lead_id"),
		CoachID: req.CoachID,
		AdminID: req.AdminID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) || errors.Is(err, domain.ErrCoachNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toAssignmentResp(outcome))
}

func (h *AdminHandler) PendingLeads(c echo.Context) error {
	leads, err := h.assignmentUC.PendingQueue()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type pendingLead struct {
		LeadID      string `json:"lead_id"`
		StudentName string `json:"student_name"`
		CreatedAt   string `json:"created_at"`
	}
	resp := make([]pendingLead, 0, len(leads))
	for _, lead := range leads {
		resp = append(resp, pendingLead{
			LeadID:      lead.ID,
			StudentName: lead.StudentName,
			CreatedAt:   lead.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"count": len(resp), "leads": resp})
}

// LeadVisits shows a lead's referral touch history, including late
// touches that lost to the first stamp.
func (h *AdminHandler) LeadVisits(c echo.Context) error {
	visits, err := h.attributionUC.VisitsForLead(c.Param("lead_id"))
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type visitResp struct {
		VisitID   string `json:"visit_id"`
		Code      string `json:"code"`
		CoachID   string `json:"coach_id,omitempty"`
		Converted bool   `json:"converted"`
		CreatedAt string `json:"created_at"`
	}
	resp := make([]visitResp, 0, len(visits))
	for _, visit := range visits {
		resp = append(resp, visitResp{
			VisitID:   visit.ID,
			Code:      visit.Code,
			CoachID:   visit.CoachID,
			Converted: visit.Converted,
			CreatedAt: visit.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"count": len(resp), "visits": resp})
}

type saveSplitPolicyReq struct {
	PlatformPct float64 `json:"platform_pct"`
	CoachPct    float64 `json:"coach_pct"`
	LeadPct     float64 `json:"lead_pct"`
	AdminID     string  `json:"admin_id"`
}

func (h *AdminHandler) SaveSplitPolicy(c echo.Context) error {
	var req saveSplitPolicyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	saved, err := h.policyUC.SaveSplitPolicy(&policy.SaveSplitPolicyInput{
		PlatformPct: req.PlatformPct,
		CoachPct:    req.CoachPct,
		LeadPct:     req.LeadPct,
		AdminID:     req.AdminID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSplitConfig) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, saved)
}

func (h *AdminHandler) ActiveSplitPolicy(c echo.Context) error {
	active, err := h.policyUC.ActiveSplitPolicy()
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, active)
}

type saveWithholdingPolicyReq struct {
	StandardRatePct float64 `json:"standard_rate_pct"`
	PenalRatePct    float64 `json:"penal_rate_pct"`
	ThresholdPaise  int64   `json:"threshold_paise"`
	AdminID         string  `json:"admin_id"`
}

func (h *AdminHandler) SaveWithholdingPolicy(c echo.Context) error {
	var req saveWithholdingPolicyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	saved, err := h.policyUC.SaveWithholdingPolicy(&policy.SaveWithholdingPolicyInput{
		StandardRatePct: req.StandardRatePct,
		PenalRatePct:    req.PenalRatePct,
		ThresholdPaise:  req.ThresholdPaise,
		AdminID:         req.AdminID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationMissing) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, saved)
}
