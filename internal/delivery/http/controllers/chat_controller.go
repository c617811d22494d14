package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/harvfi/ecudecaalumni2/internal/delivery/http/helpers"
	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ChatRequest) Validate() []string {
	if strings.TrimSpace(c.Message) == "" {
		return []string{"message is required"}
	}
	return nil
}

type ChatController struct {
	Logger  *slog.Logger
	Service domain.ChatService
}

func NewChatController(logger *slog.Logger, svc domain.ChatService) *ChatController {
	return &ChatController{Logger: logger, Service: svc}
}

// Send godoc
// @Summary Send a chat message to the assistant
// @Description Answers the message with chapter context. Generation failures degrade to a fallback reply marked as an error message; sending never fails outright.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body ChatRequest true "User message"
// @Success 200 {object} helpers.APIResponse "data contains the assistant reply"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /chat [post]
func (c *ChatController) Send(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reply, err := c.Service.Send(r.Context(), strings.TrimSpace(req.Message))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reply)
}

// History godoc
// @Summary Get the chat transcript
// @Description Returns the session transcript, starting with the assistant greeting.
// @Tags chat
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the message list"
// @Router /chat [get]
func (c *ChatController) History(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.History(r.Context()))
}
