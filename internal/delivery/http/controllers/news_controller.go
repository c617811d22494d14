package controllers

import (
	"log/slog"
	"net/http"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

type NewsController struct {
	Logger *slog.Logger
	Repo   domain.NewsRepository
}

func NewNewsController(logger *slog.Logger, repo domain.NewsRepository) *NewsController {
	return &NewsController{Logger: logger, Repo: repo}
}

// ListNews godoc
// @Summary List chapter news
// @Tags news
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the news list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /news [get]
func (c *NewsController) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := c.Repo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}
