// Package repository holds the postgres-backed repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/smart-inventory-api/infrastructure/database/postgres"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

//go:generate mockgen -source=ingestion_run.go -destination=mocks/ingestion_run.go -package=mocks

const ingestionRunTable = "ingestion_runs"

var ingestionRunColumns = []string{
	"id",
	"source",
	"file_name",
	"rows_received",
	"rows_valid",
	"inserted",
	"updated",
	"failed",
	"status",
	"message",
	"workflow_triggered",
	"created_at",
}

type IngestionRunRepository interface {
	Save(ctx context.Context, run *domain.IngestionRun) error
	ListRecent(ctx context.Context, limit int) ([]domain.IngestionRun, error)
}

type ingestionRunRepository struct {
	conn postgres.Queryer
}

func NewIngestionRunRepository(conn postgres.Queryer) IngestionRunRepository {
	return &ingestionRunRepository{
		conn: conn,
	}
}

func (r *ingestionRunRepository) Save(ctx context.Context, run *domain.IngestionRun) error {
	query, args, err := buildSaveIngestionRun(run).ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert ingestion run %s: %w", run.ID, err)
	}
	return nil
}

func (r *ingestionRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.IngestionRun, error) {
	query, args, err := buildListRecentIngestionRuns(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ingestion runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.IngestionRun, 0)
	for rows.Next() {
		var run domain.IngestionRun
		if err := rows.Scan(
			&run.ID,
			&run.Source,
			&run.FileName,
			&run.RowsReceived,
			&run.RowsValid,
			&run.Inserted,
			&run.Updated,
			&run.Failed,
			&run.Status,
			&run.Message,
			&run.WorkflowTriggered,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ingestion run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingestion runs: %w", err)
	}

	return runs, nil
}

// buildSaveIngestionRun upserts by id so a retried audit write does not fail.
func buildSaveIngestionRun(run *domain.IngestionRun) squirrel.InsertBuilder {
	return squirrel.
		Insert(ingestionRunTable).
		Columns(ingestionRunColumns...).
		Values(
			run.ID,
			run.Source,
			run.FileName,
			run.RowsReceived,
			run.RowsValid,
			run.Inserted,
			run.Updated,
			run.Failed,
			run.Status,
			run.Message,
			run.WorkflowTriggered,
			run.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			inserted = EXCLUDED.inserted,
			updated = EXCLUDED.updated,
			failed = EXCLUDED.failed,
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			workflow_triggered = EXCLUDED.workflow_triggered`).
		PlaceholderFormat(squirrel.Dollar)
}

func buildListRecentIngestionRuns(limit int) squirrel.SelectBuilder {
	return squirrel.
		Select(ingestionRunColumns...).
		From(ingestionRunTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}
