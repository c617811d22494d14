package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// RSVPRequest is the request body for POST /events/{eventID}/rsvps.
type RSVPRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r RSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

type RSVPController struct {
	Logger      *slog.Logger
	Coordinator domain.RSVPCoordinator
}

func NewRSVPController(logger *slog.Logger, coordinator domain.RSVPCoordinator) *RSVPController {
	return &RSVPController{Logger: logger, Coordinator: coordinator}
}

// RSVP godoc
// @Summary RSVP to an event
// @Description Records an RSVP for the given email. A known email has the event added to its RSVP set; an unknown email creates a guest member. The operation is idempotent.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body RSVPRequest true "RSVP email"
// @Success 200 {object} helpers.APIResponse "data contains the member holding the RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvps [post]
func (c *RSVPController) RSVP(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member, err := c.Coordinator.RSVP(r.Context(), strings.TrimSpace(req.Email), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, member)
}
