package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/usecase/coach"
)

type CoachHandler struct {
	uc *coach.DefaultCoachUsecase
}

func NewCoachHandler(uc *coach.DefaultCoachUsecase) *CoachHandler {
	return &CoachHandler{uc: uc}
}

type createCoachReq struct {
	FullName           string `json:"full_name"`
	Phone              string `json:"phone"`
	TaxIDType       string `json:"tax_id_type"`
	TaxIDValue      string `json:"tax_id_value"`
	LinkageVerified bool   `json:"linkage_verified"`
	AccountNumber   string `json:"account_number"`
	IFSC            string `json:"ifsc"`
	HolderName      string `json:"holder_name"`
}

type coachResp struct {
	CoachID      string `json:"coach_id"`
	FullName     string `json:"full_name"`
	ReferralCode string `json:"referral_code"`
	Active       bool   `json:"active"`
	Available    bool   `json:"available"`
	ExitStatus   string `json:"exit_status"`
}

func (h *CoachHandler) Create(c echo.Context) error {
	var req createCoachReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	created, err := h.uc.CreateCoach(&coach.CreateCoachInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		TaxIdentity: domain.TaxIdentity{
			Type:            domain.TaxIDType(req.TaxIDType),
			Value:           req.TaxIDValue,
			LinkageVerified: req.LinkageVerified,
		},
		Destination: domain.PayoutDestination{
			AccountNumber: req.AccountNumber,
			IFSC:          req.IFSC,
			HolderName:    req.HolderName,
		},
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, toCoachResp(created))
}

func (h *CoachHandler) Get(c echo.Context) error {
	found, err := h.uc.GetCoach(c.Param("coach_id"))
	if err != nil {
		if errors.Is(err, domain.ErrCoachNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toCoachResp(found))
}

type availabilityReq struct {
	Available bool `json:"available"`
}

func (h *CoachHandler) SetAvailability(c echo.Context) error {
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := h.uc.SetAvailability(c.Param("coach_id"), req.Available); err != nil {
		if errors.Is(err, domain.ErrCoachNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"available": req.Available})
}

type exitReq struct {
	Status string `json:"status"`
}

func (h *CoachHandler) SetExitStatus(c echo.Context) error {
	var req exitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := h.uc.SetExitStatus(c.Param("coach_id"), domain.ExitStatus(req.Status)); err != nil {
		if errors.Is(err, domain.ErrCoachNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}

type taxIdentityReq struct {
	Type            string `json:"type"`
	Value           string `json:"value"`
	LinkageVerified bool   `json:"linkage_verified"`
}

func (h *CoachHandler) UpdateTaxIdentity(c echo.Context) error {
	var req taxIdentityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	err := h.uc.UpdateTaxIdentity(c.Param("coach_id"), domain.TaxIdentity{
		Type:            domain.TaxIDType(req.Type),
		Value:           req.Value,
		LinkageVerified: req.LinkageVerified,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCoachNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func toCoachResp(c *domain.Coach) coachResp {
	return coachResp{
		CoachID:      c.ID,
		FullName:     c.FullName,
		ReferralCode: c.ReferralCode,
		Active:       c.Active,
		Available:    c.Available,
		ExitStatus:   string(c.ExitStatus),
	}
}
