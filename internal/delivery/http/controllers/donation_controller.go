package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// DonationRequest is the request body for POST /donations.
type DonationRequest struct {
	Amount string `json:"amount"`
}

// Validate implements Validator.
func (d DonationRequest) Validate() []string {
	if strings.TrimSpace(d.Amount) == "" {
		return []string{"amount is required"}
	}
	return nil
}

type DonationController struct {
	Logger  *slog.Logger
	Service domain.DonationService
}

func NewDonationController(logger *slog.Logger, svc domain.DonationService) *DonationController {
	return &DonationController{Logger: logger, Service: svc}
}

// Donate godoc
// @Summary Donate to the student travel fund
// @Description Presents the payment sheet for the given decimal amount. A dismissed sheet resolves to a cancelled donation, not an error.
// @Tags donations
// @Accept json
// @Produce json
// @Param body body DonationRequest true "Donation amount (decimal string)"
// @Success 200 {object} helpers.APIResponse "data contains the donation record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: payment_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /donations [post]
func (c *DonationController) Donate(w http.ResponseWriter, r *http.Request) {
	var req DonationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	donation, err := c.Service.Donate(r.Context(), strings.TrimSpace(req.Amount))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrPaymentUnsupported) {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodePaymentUnavailable, "payments are not available")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, donation)
}
