package controllers

import (
	"log/slog"
	"net/http"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

type MemberController struct {
	Logger *slog.Logger
	Repo   domain.MemberRepository
}

func NewMemberController(logger *slog.Logger, repo domain.MemberRepository) *MemberController {
	return &MemberController{Logger: logger, Repo: repo}
}

// ListMembers godoc
// @Summary List the alumni roster
// @Description Returns every member in the roster, including guests created through RSVPs.
// @Tags members
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the member list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /members [get]
func (c *MemberController) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Repo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}
