package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrEmptyMessage is returned when the trimmed user message is empty. It is
// detected before any model call is made.
var ErrEmptyMessage = errors.New("message is required")

type Service struct {
	history   Repository
	generator Generator
	logger    zerolog.Logger
}

func NewService(history Repository, generator Generator, logger zerolog.Logger) *Service {
	return &Service{history: history, generator: generator, logger: logger}
}

// Converse relays the user message to the model and records the exchange.
// Persistence is best-effort: a storage failure is logged and the reply is
// still returned, so a transient outage never costs the user their answer.
func (s *Service) Converse(ctx context.Context, message, sessionID string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	response, err := s.generator.Generate(ctx, systemPrompt, message)
	if err != nil {
		return nil, fmt.Errorf("generate response: %w", err)
	}
	if response == "" {
		response = fallbackResponse
	}

	turn := &Turn{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: response,
	}
	if err := s.history.SaveTurn(ctx, turn); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to save chat turn")
	}

	return &Reply{
		Response:  response,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	}, nil
}

// History returns all turns for a session, oldest first.
func (s *Service) History(ctx context.Context, sessionID string) ([]*Turn, error) {
	return s.history.ListBySession(ctx, sessionID)
}
