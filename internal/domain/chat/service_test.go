package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// -- Stubs --

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

type mockChatRepo struct {
	turns   []*Turn
	saveErr error
	listErr error
}

func (m *mockChatRepo) SaveTurn(_ context.Context, t *Turn) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	t.ID = int64(len(m.turns) + 1)
	t.CreatedAt = time.Now().Add(time.Duration(len(m.turns)) * time.Second)
	m.turns = append(m.turns, t)
	return nil
}

func (m *mockChatRepo) ListBySession(_ context.Context, sessionID string) ([]*Turn, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*Turn
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			result = append(result, t)
		}
	}
	return result, nil
}

func newTestService(gen *stubGenerator, repo *mockChatRepo) *Service {
	return NewService(repo, gen, zerolog.Nop())
}

// -- Converse --

func TestConverse_Success(t *testing.T) {
	gen := &stubGenerator{text: "Drink plenty of fluids and rest."}
	repo := &mockChatRepo{}
	svc := newTestService(gen, repo)

	reply, err := svc.Converse(context.Background(), "How do I treat a cold?", "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Response != "Drink plenty of fluids and rest." {
		t.Errorf("unexpected response: %q", reply.Response)
	}
	if reply.SessionID != "session-1" {
		t.Errorf("expected session to be echoed, got %q", reply.SessionID)
	}
	if reply.Timestamp.IsZero() {
		t.Error("expected a response timestamp")
	}

	if len(repo.turns) != 1 {
		t.Fatalf("expected 1 stored turn, got %d", len(repo.turns))
	}
	if repo.turns[0].UserMessage != "How do I treat a cold?" {
		t.Errorf("unexpected stored message: %q", repo.turns[0].UserMessage)
	}
	if repo.turns[0].BotResponse != reply.Response {
		t.Errorf("unexpected stored response: %q", repo.turns[0].BotResponse)
	}
}

func TestConverse_EmptyMessage(t *testing.T) {
	gen := &stubGenerator{text: "should not be called"}
	svc := newTestService(gen, &mockChatRepo{})

	for _, msg := range []string{"", "   ", "\n\t "} {
		_, err := svc.Converse(context.Background(), msg, "")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("message %q: expected ErrEmptyMessage, got %v", msg, err)
		}
	}
	if gen.calls != 0 {
		t.Errorf("expected no model calls for empty messages, got %d", gen.calls)
	}
}

func TestConverse_TrimsMessage(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	repo := &mockChatRepo{}
	svc := newTestService(gen, repo)

	if _, err := svc.Converse(context.Background(), "  hello  \n", "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.turns[0].UserMessage != "hello" {
		t.Errorf("expected trimmed message, got %q", repo.turns[0].UserMessage)
	}
}

func TestConverse_GeneratesSessionID(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	svc := newTestService(gen, &mockChatRepo{})

	first, err := svc.Converse(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.SessionID == "" {
		t.Fatal("expected a generated session id")
	}

	second, err := svc.Converse(context.Background(), "hello again", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.SessionID == first.SessionID {
		t.Error("expected distinct generated session ids")
	}
}

func TestConverse_FallbackOnEmptyOutput(t *testing.T) {
	gen := &stubGenerator{text: ""}
	repo := &mockChatRepo{}
	svc := newTestService(gen, repo)

	reply, err := svc.Converse(context.Background(), "hello", "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Response != fallbackResponse {
		t.Errorf("expected fallback response, got %q", reply.Response)
	}
	if repo.turns[0].BotResponse != fallbackResponse {
		t.Errorf("expected fallback to be persisted, got %q", repo.turns[0].BotResponse)
	}
}

func TestConverse_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream unavailable")}
	repo := &mockChatRepo{}
	svc := newTestService(gen, repo)

	_, err := svc.Converse(context.Background(), "hello", "s")
	if err == nil {
		t.Fatal("expected error from generator")
	}
	if len(repo.turns) != 0 {
		t.Error("expected no turn to be stored on generation failure")
	}
}

func TestConverse_PersistenceFailureIsNonFatal(t *testing.T) {
	gen := &stubGenerator{text: "still here"}
	repo := &mockChatRepo{saveErr: errors.New("storage outage")}
	svc := newTestService(gen, repo)

	reply, err := svc.Converse(context.Background(), "hello", "s")
	if err != nil {
		t.Fatalf("expected persistence failure to be swallowed, got %v", err)
	}
	if reply.Response != "still here" {
		t.Errorf("unexpected response: %q", reply.Response)
	}
}

// -- History --

func TestHistory_AscendingPerSession(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	repo := &mockChatRepo{}
	svc := newTestService(gen, repo)

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := svc.Converse(context.Background(), msg, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := svc.Converse(context.Background(), "other session", "s2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	turns, err := svc.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	want := []string{"first", "second", "third"}
	for i, turn := range turns {
		if turn.UserMessage != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], turn.UserMessage)
		}
		if i > 0 && turn.CreatedAt.Before(turns[i-1].CreatedAt) {
			t.Error("expected ascending creation order")
		}
	}
}

func TestHistory_UnknownSession(t *testing.T) {
	svc := newTestService(&stubGenerator{text: "ok"}, &mockChatRepo{})

	turns, err := svc.History(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
