package chat

import "context"

// Repository is the storage gateway for chat transcripts.
type Repository interface {
	SaveTurn(ctx context.Context, t *Turn) error
	ListBySession(ctx context.Context, sessionID string) ([]*Turn, error)
}

// Generator produces a model response for a single user turn under a fixed
// system instruction. The concrete Gemini client lives in platform/genai;
// tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, userMessage string) (string, error)
}
