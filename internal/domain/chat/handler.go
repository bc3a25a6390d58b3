package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/chat", h.Converse)
	api.GET("/chat/history/:session_id", h.History)
}

type converseRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type converseResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) Converse(c echo.Context) error {
	var req converseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	reply, err := h.svc.Converse(c.Request().Context(), req.Message, req.SessionID)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			return echo.NewHTTPError(http.StatusBadRequest, "Message is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process your message. Please try again.").SetInternal(err)
	}

	return c.JSON(http.StatusOK, converseResponse{
		Response:  reply.Response,
		SessionID: reply.SessionID,
		Timestamp: reply.Timestamp.Format(time.RFC3339),
	})
}

type historyEntry struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Timestamp   string `json:"timestamp"`
}

func (h *Handler) History(c echo.Context) error {
	sessionID := c.Param("session_id")

	turns, err := h.svc.History(c.Request().Context(), sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve chat history").SetInternal(err)
	}

	entries := make([]historyEntry, 0, len(turns))
	for _, t := range turns {
		entries = append(entries, historyEntry{
			UserMessage: t.UserMessage,
			BotResponse: t.BotResponse,
			Timestamp:   t.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"history": entries})
}
