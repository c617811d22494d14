package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(strings.TrimSpace(l.Email)) {
		errs = append(errs, "invalid email format")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// SignupRequest is the request body for POST /auth/signup
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	GradYear    int    `json:"grad_year"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Achievement string `json:"achievement"`
}

// Validate implements Validator.
func (s SignupRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(strings.TrimSpace(s.Email)) {
		errs = append(errs, "invalid email format")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else if len(s.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if s.GradYear != 0 && (s.GradYear < 1950 || s.GradYear > time.Now().Year()+1) {
		errs = append(errs, "grad_year is out of range")
	}
	return errs
}

// AuthResponse is the response body for login and signup.
type AuthResponse struct {
	Token     string         `json:"token"`
	TokenType string         `json:"token_type"`
	Member    *domain.Member `json:"member"`
}

// MeResponse is the response body for GET /auth/me.
type MeResponse struct {
	Member     *domain.Member  `json:"member"`
	RSVPEvents []*domain.Event `json:"rsvp_events"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.IdentityService
}

func NewAuthController(logger *slog.Logger, svc domain.IdentityService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// Login godoc
// @Summary Log in
// @Description Resolve the member record by exact email match, creating a default profile on a miss. Always succeeds for a well-formed request; the password is accepted but never verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, member, err := c.Service.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthResponse{Token: token, TokenType: "Bearer", Member: member})
}

// Signup godoc
// @Summary Sign up a new member
// @Description Create a new member from the signup form. Optional profile fields fall back to defaults. The email must not already be registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup form"
// @Success 201 {object} helpers.APIResponse "data contains token, token_type, and member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	profile := domain.SignupProfile{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		GradYear:    req.GradYear,
		Company:     strings.TrimSpace(req.Company),
		Role:        strings.TrimSpace(req.Role),
		Bio:         strings.TrimSpace(req.Bio),
		Achievement: strings.TrimSpace(req.Achievement),
	}
	token, member, err := c.Service.Signup(r.Context(), profile, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{Token: token, TokenType: "Bearer", Member: member})
}

// Logout godoc
// @Summary Log out
// @Description Clears the current session. The member record remains in the roster.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Service.Logout(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me godoc
// @Summary Get the current member
// @Description Returns the current member's profile along with the events they have RSVPed to.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains member and rsvp_events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	member, rsvpEvents, err := c.Service.Me(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "no active session")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MeResponse{Member: member, RSVPEvents: rsvpEvents})
}
