package chat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the PostgreSQL-backed chat transcript repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) SaveTurn(ctx context.Context, t *Turn) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat_history (session_id, user_message, bot_response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		t.SessionID, t.UserMessage, t.BotResponse,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat turn: %w", err)
	}
	return nil
}

func (r *repoPG) ListBySession(ctx context.Context, sessionID string) ([]*Turn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, user_message, bot_response, created_at
		FROM chat_history
		WHERE session_id = $1
		ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var turns []*Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserMessage, &t.BotResponse, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat turn: %w", err)
		}
		turns = append(turns, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}

	return turns, nil
}
