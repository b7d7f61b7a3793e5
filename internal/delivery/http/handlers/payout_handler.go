package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tutorstack/settlement-service/internal/domain"
	payoutdto "github.com/tutorstack/settlement-service/internal/usecase/dto/payoutrun"
	"github.com/tutorstack/settlement-service/internal/usecase/payout"
)

type PayoutHandler struct {
	uc *payout.DefaultPayoutUsecase
}

func NewPayoutHandler(uc *payout.DefaultPayoutUsecase) *PayoutHandler {
	return &PayoutHandler{uc: uc}
}

type runBatchReq struct {
	// At is optional; empty means "the current period".
	At          string `json:"at"`
	TriggeredBy string `json:"triggered_by"`
}

type batchLineResp struct {
	CoachID              string  `json:"coach_id"`
	GrossPaise           int64   `json:"gross_paise"`
	WithholdingRatePct   float64 `json:"withholding_rate_pct"`
	WithholdingPaise     int64   `json:"withholding_paise"`
	ClawbackAppliedPaise int64   `json:"clawback_applied_paise"`
	CarriedForwardPaise  int64   `json:"carried_forward_paise"`
	NetPaise             int64   `json:"net_paise"`
	Status               string  `json:"status"`
}

type batchResp struct {
	BatchID        string          `json:"batch_id"`
	PeriodKey      string          `json:"period_key"`
	AlreadyExisted bool            `json:"already_existed"`
	Lines          []batchLineResp `json:"lines"`
}

// RunBatch is hit by the external scheduler once per period. Re-running
// a settled period returns the stored batch with already_existed=true.
func (h *PayoutHandler) RunBatch(c echo.Context) error {
	var req runBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	at := time.Now().UTC()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "at must be RFC3339"})
		}
		at = parsed
	}

	out, err := h.uc.RunBatch(&payoutdto.RunBatchInput{At: at, TriggeredBy: req.TriggeredBy})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingToBatch):
			return c.JSON(http.StatusOK, map[string]interface{}{"period_settled": false, "reason": err.Error()})
		case errors.Is(err, domain.ErrConfigurationMissing):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, toBatchResp(out.Batch, out.AlreadyExisted))
}

func (h *PayoutHandler) GetBatch(c echo.Context) error {
	batch, err := h.uc.GetBatch(c.Param("batch_id"))
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toBatchResp(batch, false))
}

func (h *PayoutHandler) MarkPaid(c echo.Context) error {
	batch, err := h.uc.MarkBatchPaid(c.Param("batch_id"))
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"batch_id": batch.ID, "status": string(domain.PayoutPaid)})
}

type clawbackReq struct {
	EnrollmentID string `json:"enrollment_id"`
	CoachID      string `json:"coach_id"`
	AmountPaise  int64  `json:"amount_paise"`
	Reason       string `json:"reason"`
	ConfirmedBy  string `json:"confirmed_by"`
}

// RecordClawback takes admin-confirmed fault events only; a bare refund
// without confirmation never lands here.
func (h *PayoutHandler) RecordClawback(c echo.Context) error {
	var req clawbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	clawback, err := h.uc.RecordClawback(&payoutdto.ClawbackInput{
		EnrollmentID: req.EnrollmentID,
		CoachID:      req.CoachID,
		AmountPaise:  req.AmountPaise,
		Reason:       req.Reason,
		ConfirmedBy:  req.ConfirmedBy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"clawback_id":  clawback.ID,
		"coach_id":     clawback.CoachID,
		"amount_paise": clawback.AmountPaise,
	})
}

// OpenClawbacks lists the clawbacks future batch runs still have to
// absorb.
func (h *PayoutHandler) OpenClawbacks(c echo.Context) error {
	open, err := h.uc.OpenClawbacks()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type openClawbackResp struct {
		ClawbackID     string `json:"clawback_id"`
		EnrollmentID   string `json:"enrollment_id"`
		CoachID        string `json:"coach_id"`
		AmountPaise    int64  `json:"amount_paise"`
		RemainingPaise int64  `json:"remaining_paise"`
		Reason         string `json:"reason"`
		CreatedAt      string `json:"created_at"`
	}
	resp := make([]openClawbackResp, 0, len(open))
	for _, clawback := range open {
		resp = append(resp, openClawbackResp{
			ClawbackID:     clawback.ID,
			EnrollmentID:   clawback.EnrollmentID,
			CoachID:        clawback.CoachID,
			AmountPaise:    clawback.AmountPaise,
			RemainingPaise: clawback.RemainingPaise,
			Reason:         string(clawback.Reason),
			CreatedAt:      clawback.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"count": len(resp), "clawbacks": resp})
}

func (h *PayoutHandler) HoldEnrollment(c echo.Context) error {
	if err := h.uc.HoldEnrollment(c.Param("enrollment_id")); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "held"})
}

func toBatchResp(batch *domain.PayoutBatch, alreadyExisted bool) batchResp {
	resp := batchResp{
		BatchID:        batch.ID,
		PeriodKey:      batch.PeriodKey,
		AlreadyExisted: alreadyExisted,
		Lines:          make([]batchLineResp, 0, len(batch.Lines)),
	}
	for _, line := range batch.Lines {
		resp.Lines = append(resp.Lines, batchLineResp{
			CoachID:              line.CoachID,
			GrossPaise:           line.GrossPaise,
			WithholdingRatePct:   line.WithholdingRatePct,
			WithholdingPaise:     line.WithholdingPaise,
			ClawbackAppliedPaise: line.ClawbackAppliedPaise,
			CarriedForwardPaise:  line.CarriedForwardPaise,
			NetPaise:             line.NetPaise,
			Status:               string(line.Status),
		})
	}
	return resp
}
