package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresIdeaRepository handles idea data access
type PostgresIdeaRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresIdeaRepository(pool *pgxpool.Pool) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{pool: pool}
}

func (r *PostgresIdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	start := time.Now()
	operation := "createIdea"

	query := `
		INSERT INTO ideas (title, description, flowchart, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, idea.Title, idea.Description, idea.Flowchart, idea.UserID).
		Scan(&idea.ID, &idea.CreatedAt)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return fmt.Errorf("failed to create idea: %w", err)
	}

	recordMetrics(operation, "success", start, zap.String("idea_id", idea.ID))
	return nil
}

func (r *PostgresIdeaRepository) ListByUser(ctx context.Context, userID string) ([]models.Idea, error) {
	start := time.Now()
	operation := "listIdeasByUser"

	query := `
		SELECT id, title, description, flowchart, user_id, created_at
		FROM ideas
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, maxListRows)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	ideas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Idea, error) {
		var idea models.Idea
		err := row.Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Flowchart, &idea.UserID, &idea.CreatedAt)
		return idea, err
	})
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan ideas: %w", err)
	}

	recordMetrics(operation, "success", start, zap.Int("count", len(ideas)))
	return ideas, nil
}
