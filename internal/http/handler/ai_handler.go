package handler

import (
	"net/http"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

type AIHandler struct {
	ai service.AIServiceInterface
}

func NewAIHandler(ai service.AIServiceInterface) *AIHandler {
	return &AIHandler{ai: ai}
}

type summarizeRequest struct {
	Description string `json:"description" validate:"max=20000"`
}

type chatTurnRequest struct {
	Role    string `json:"role" validate:"max=32"`
	Content string `json:"content" validate:"max=20000"`
}

type chatRequest struct {
	Description string            `json:"description" validate:"max=20000"`
	Question    string            `json:"question" validate:"max=4000"`
	History     []chatTurnRequest `json:"history" validate:"max=50,dive"`
}

func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeDecodeError(w, r, err, "Invalid summarize request")
		return
	}
	summary, err := h.ai.Summarize(r.Context(), req.Description)
	if err != nil {
		writeServiceError(w, r, err, "AI summarization failed")
		return
	}
	response.JSON(w, r, http.StatusOK, "", map[string]any{"summary": summary})
}

func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeDecodeError(w, r, err, "Invalid chat request")
		return
	}
	history := make([]service.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, service.ChatTurn{Role: turn.Role, Content: turn.Content})
	}
	answer, err := h.ai.Chat(r.Context(), service.ChatInput{
		Description: req.Description,
		Question:    req.Question,
		History:     history,
	})
	if err != nil {
		writeServiceError(w, r, err, "AI chat failed")
		return
	}
	response.JSON(w, r, http.StatusOK, "", map[string]any{"answer": answer})
}
