package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// DraftRequest is the request body for POST /announcements/draft.
type DraftRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// Validate implements Validator.
func (d DraftRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(d.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(d.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, "location is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, "description is required")
	}
	if d.Category != "" && !domain.ValidCategory(domain.EventCategory(d.Category)) {
		errs = append(errs, "unknown category")
	}
	return errs
}

// DraftResponse is the response body for POST /announcements/draft.
type DraftResponse struct {
	Draft string           `json:"draft"`
	State domain.FlowState `json:"state"`
}

type AnnouncementController struct {
	Logger *slog.Logger
	Flow   domain.AnnouncementFlow
}

func NewAnnouncementController(logger *slog.Logger, flow domain.AnnouncementFlow) *AnnouncementController {
	return &AnnouncementController{Logger: logger, Flow: flow}
}

// GetFlow godoc
// @Summary Get the announcement flow state
// @Description Returns the current state of the add-event flow: phase, form, and drafted text.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the flow snapshot"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /announcements [get]
func (c *AnnouncementController) GetFlow(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Flow.Snapshot(r.Context()))
}

// Draft godoc
// @Summary Draft an announcement from the event form
// @Description Validates the event form and drafts announcement text for preview. Drafting always yields text; generation failures degrade to a fallback message.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DraftRequest true "Event form"
// @Success 200 {object} helpers.APIResponse "data contains the drafted text and new state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (flow not in form state)"
// @Router /announcements/draft [post]
func (c *AnnouncementController) Draft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	form := domain.EventForm{
		Title:       strings.TrimSpace(req.Title),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Category:    domain.EventCategory(req.Category),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	draft, err := c.Flow.SubmitForm(r.Context(), form)
	if err != nil {
		if errors.Is(err, domain.ErrFlowState) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DraftResponse{Draft: draft, State: c.Flow.Snapshot(r.Context()).State})
}

// Edit godoc
// @Summary Return from preview to the form
// @Description Discards the drafted text and reopens the form with its values intact.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the flow snapshot"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (flow not in preview state)"
// @Router /announcements/edit [post]
func (c *AnnouncementController) Edit(w http.ResponseWriter, r *http.Request) {
	if err := c.Flow.Edit(r.Context()); err != nil {
		if errors.Is(err, domain.ErrFlowState) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Flow.Snapshot(r.Context()))
}

// Send godoc
// @Summary Send the announcement and publish the event
// @Description Dispatches the announcement to subscribers and appends the event to the shared collection. The event becomes visible only on success.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (flow not in preview state)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcements/send [post]
func (c *AnnouncementController) Send(w http.ResponseWriter, r *http.Request) {
	event, err := c.Flow.Send(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrFlowState) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Reset godoc
// @Summary Reset the announcement flow
// @Description Clears the flow back to an empty form. Valid from any state.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the flow snapshot"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /announcements/reset [post]
func (c *AnnouncementController) Reset(w http.ResponseWriter, r *http.Request) {
	c.Flow.Reset(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Flow.Snapshot(r.Context()))
}
