package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresMessageRepository handles team chat history
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// Create inserts msg. Chat messages arrive with a socket-assigned ID, so
// the insert is idempotent on id.
func (r *PostgresMessageRepository) Create(ctx context.Context, msg *models.TeamMessage) error {
	start := time.Now()
	operation := "createTeamMessage"

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO team_messages (id, team_id, sender, sender_name, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, msg.ID, msg.TeamID, msg.Sender, msg.SenderName, msg.Message, msg.CreatedAt)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err), zap.String("team_id", msg.TeamID))
		return fmt.Errorf("failed to create team message: %w", err)
	}

	recordMetrics(operation, "success", start, zap.String("team_id", msg.TeamID))
	return nil
}

func (r *PostgresMessageRepository) ListByTeam(ctx context.Context, teamID string) ([]models.TeamMessage, error) {
	start := time.Now()
	operation := "listTeamMessages"

	// newest rows first so the cap keeps recent history, then flipped back
	query := `
		SELECT id, team_id, sender, sender_name, message, created_at
		FROM (
			SELECT id, team_id, sender, sender_name, message, created_at
			FROM team_messages
			WHERE team_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, teamID, maxListRows)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to list team messages: %w", err)
	}

	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamMessage, error) {
		var m models.TeamMessage
		err := row.Scan(&m.ID, &m.TeamID, &m.Sender, &m.SenderName, &m.Message, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan team messages: %w", err)
	}

	recordMetrics(operation, "success", start, zap.String("team_id", teamID), zap.Int("count", len(messages)))
	return messages, nil
}
