package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"renocost/pkg/core/cost"
	"renocost/pkg/core/project"
)

// SavedEstimate is one persisted estimate snapshot.
type SavedEstimate struct {
	ID         string                 `json:"id"`
	CreatedAt  time.Time              `json:"created_at"`
	Project    project.Snapshot       `json:"project"`
	Result     cost.CalculationResult `json:"result"`
	GrandTotal float64                `json:"grand_total"`
}

// EstimateRepo stores estimate snapshots as JSONB rows.
type EstimateRepo struct {
	pool *pgxpool.Pool
}

// NewEstimateRepo creates a repository over the given pool.
func NewEstimateRepo(pool *pgxpool.Pool) *EstimateRepo {
	return &EstimateRepo{pool: pool}
}

// Save persists a snapshot together with its calculated result and returns
// the generated id.
func (r *EstimateRepo) Save(ctx context.Context, snap project.Snapshot, result cost.CalculationResult) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	projectJSON, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal project snapshot: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO estimates (id, project, result, grand_total)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pool.Exec(ctx, query, id, projectJSON, resultJSON, result.GrandTotal); err != nil {
		return "", fmt.Errorf("failed to save estimate: %w", err)
	}
	return id, nil
}

// Get loads one saved estimate by id.
func (r *EstimateRepo) Get(ctx context.Context, id string) (*SavedEstimate, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id, created_at, project, result, grand_total
		FROM estimates WHERE id = $1
	`
	var saved SavedEstimate
	var projectJSON, resultJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&saved.ID, &saved.CreatedAt, &projectJSON, &resultJSON, &saved.GrandTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate %s: %w", id, err)
	}
	if err := json.Unmarshal(projectJSON, &saved.Project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project snapshot: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &saved.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &saved, nil
}

// List returns the most recent saved estimates without their full payloads.
func (r *EstimateRepo) List(ctx context.Context, limit int) ([]SavedEstimate, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, created_at, grand_total
		FROM estimates ORDER BY created_at DESC LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	defer rows.Close()

	var out []SavedEstimate
	for rows.Next() {
		var s SavedEstimate
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.GrandTotal); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
