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

// PostgresTeamProfileRepository handles team member profiles.
// availability and looking_for are jsonb columns.
type PostgresTeamProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTeamProfileRepository(pool *pgxpool.Pool) *PostgresTeamProfileRepository {
	return &PostgresTeamProfileRepository{pool: pool}
}

func (r *PostgresTeamProfileRepository) Create(ctx context.Context, p *models.TeamProfile) error {
	start := time.Now()
	operation := "createTeamProfile"

	query := `
		INSERT INTO team_profiles (
			team_id, user_id, name, email, role, tech_stack, skills,
			availability, looking_for, github_repo, discord_link
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.TeamID, p.UserID, p.Name, p.Email, p.Role,
		nonNil(p.TechStack), nonNil(p.Skills),
		nonNil(p.Availability), nonNil(p.LookingFor),
		p.GitHubRepo, p.DiscordLink,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err), zap.String("team_id", p.TeamID))
		return fmt.Errorf("failed to create team profile: %w", err)
	}

	recordMetrics(operation, "success", start, zap.String("team_id", p.TeamID))
	return nil
}

func (r *PostgresTeamProfileRepository) ListByTeam(ctx context.Context, teamID string) ([]models.TeamProfile, error) {
	start := time.Now()
	operation := "listTeamProfiles"

	query := `
		SELECT id, team_id, user_id, name, email, role, tech_stack, skills,
			availability, looking_for, github_repo, discord_link, created_at
		FROM team_profiles
		WHERE team_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, teamID, maxListRows)
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to list team profiles: %w", err)
	}

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamProfile, error) {
		var p models.TeamProfile
		err := row.Scan(&p.ID, &p.TeamID, &p.UserID, &p.Name, &p.Email, &p.Role,
			&p.TechStack, &p.Skills, &p.Availability, &p.LookingFor,
			&p.GitHubRepo, &p.DiscordLink, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		recordMetrics(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan team profiles: %w", err)
	}

	recordMetrics(operation, "success", start, zap.String("team_id", teamID), zap.Int("count", len(profiles)))
	return profiles, nil
}

// nonNil keeps NOT NULL array and jsonb columns from receiving NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
