package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/sandeepkv93/notes-ai-backend/internal/llm"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

const (
	summarizeSystemPrompt = "You are a helpful assistant that summarizes notes."
	chatSystemPrompt      = "You are a helpful assistant. Use the following note as context for all answers."

	msgDescriptionRequired = "Description is required"
	msgChatFieldsRequired  = "Description and question are required"
	msgSummarizeFailed     = "AI summarization failed"
	msgChatFailed          = "AI chat failed"
	msgInvalidHistoryRole  = "History roles must be user or assistant"
)

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatInput struct {
	Description string
	Question    string
	History     []ChatTurn
}

// AIService forwards prompts built around a note to the configured provider.
// Upstream failures are reported as dependency errors; nothing is retried.
type AIService struct {
	provider llm.Provider
	model    string
	logger   *slog.Logger
}

func NewAIService(provider llm.Provider, model string, logger *slog.Logger) *AIService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIService{provider: provider, model: model, logger: logger}
}

func (s *AIService) Summarize(ctx context.Context, description string) (string, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordAIRequest(ctx, "summarize", outcome, time.Since(start)) }()

	description = strings.TrimSpace(description)
	if description == "" {
		outcome = "bad_request"
		return "", ValidationError(msgDescriptionRequired)
	}
	resp, err := s.generate(ctx, "summarize", &llm.Request{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summarizeSystemPrompt},
			{Role: llm.RoleUser, Content: "Summarize this note in 2-3 sentences:\n\n" + description},
		},
		MaxTokens:   120,
		Temperature: 0.5,
	})
	if err != nil {
		outcome = "error"
		s.logger.ErrorContext(ctx, "ai summarize failed", "provider", s.provider.Name(), "error", err)
		return "", DependencyError(msgSummarizeFailed, err)
	}
	return resp.Content, nil
}

func (s *AIService) Chat(ctx context.Context, in ChatInput) (string, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordAIRequest(ctx, "chat", outcome, time.Since(start)) }()

	description := strings.TrimSpace(in.Description)
	question := strings.TrimSpace(in.Question)
	if description == "" || question == "" {
		outcome = "bad_request"
		return "", ValidationError(msgChatFieldsRequired)
	}

	messages := make([]llm.Message, 0, len(in.History)+3)
	messages = append(messages,
		llm.Message{Role: llm.RoleSystem, Content: chatSystemPrompt},
		llm.Message{Role: llm.RoleUser, Content: "Note: " + description},
	)
	for _, turn := range in.History {
		role := llm.Role(strings.ToLower(strings.TrimSpace(turn.Role)))
		if role != llm.RoleUser && role != llm.RoleAssistant {
			outcome = "bad_request"
			return "", ValidationError(msgInvalidHistoryRole)
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	resp, err := s.generate(ctx, "chat", &llm.Request{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		outcome = "error"
		s.logger.ErrorContext(ctx, "ai chat failed", "provider", s.provider.Name(), "error", err)
		return "", DependencyError(msgChatFailed, err)
	}
	return resp.Content, nil
}

func (s *AIService) generate(ctx context.Context, operation string, req *llm.Request) (*llm.Response, error) {
	ctx, span := observability.StartSpan(ctx, "ai."+operation,
		attribute.String("llm.provider", s.provider.Name()),
		attribute.String("llm.model", req.Model),
	)
	resp, err := s.provider.Generate(ctx, req)
	observability.EndSpan(span, err)
	return resp, err
}
