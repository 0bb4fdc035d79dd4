// Package store provides PostgreSQL persistence for analysis results and
// reference-data overrides. Results are write-once: the core never reads
// historical results for its own decisions.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, types.NewExternalServiceError(err, "connecting to database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, types.NewExternalServiceError(err, "pinging database")
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveAnalysis records one completed evaluation and returns its identifier.
func (s *Store) SaveAnalysis(ctx context.Context, result *types.ComprehensiveAnalysisResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO analyses (overall_score, industry, role_level, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		result.OverallScore,
		result.Breakdown.Industry,
		string(result.Breakdown.RoleLevel),
		payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, types.NewExternalServiceError(err, "saving analysis")
	}
	return id, nil
}

// GetAnalysis retrieves a stored result by ID, for the read-only retrieval
// surface. Missing rows map to a validation error so the transport layer can
// answer 404.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.ComprehensiveAnalysisResult, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result FROM analyses WHERE id = $1`, id,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, types.NewValidationError("analysis %s not found", id)
	}
	if err != nil {
		return nil, types.NewExternalServiceError(err, "loading analysis %s", id)
	}

	var result types.ComprehensiveAnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &result, nil
}

// LoadWeightOverrides reads operator-supplied weight tables that supersede
// the embedded defaults. An empty table set means no overrides exist.
func (s *Store) LoadWeightOverrides(ctx context.Context) ([]refdata.WeightTable, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT industry, role_level, weights FROM weight_overrides ORDER BY industry, role_level`)
	if err != nil {
		return nil, types.NewExternalServiceError(err, "loading weight overrides")
	}
	defer rows.Close()

	var tables []refdata.WeightTable
	for rows.Next() {
		var t refdata.WeightTable
		var level string
		var payload []byte
		if err := rows.Scan(&t.Industry, &level, &payload); err != nil {
			return nil, types.NewExternalServiceError(err, "scanning weight override")
		}
		if err := json.Unmarshal(payload, &t.Weights); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weight override for %q: %w", t.Industry, err)
		}
		t.RoleLevel = types.RoleLevel(level)
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewExternalServiceError(err, "iterating weight overrides")
	}
	return tables, nil
}
