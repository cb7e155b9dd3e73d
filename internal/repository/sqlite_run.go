package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/rendezvous/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, b *domain.BatchRun) error {
	query := `INSERT INTO batch_runs (id, plan, scenarios, successes, success_pct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Plan,
		b.Scenarios,
		b.Successes,
		b.SuccessPct,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting batch run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.BatchRun, error) {
	query := `SELECT id, plan, scenarios, successes, success_pct, created_at
		FROM batch_runs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var b domain.BatchRun
	var createdAtStr string
	err := row.Scan(&b.ID, &b.Plan, &b.Scenarios, &b.Successes, &b.SuccessPct, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("batch run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning batch run: %w", err)
	}
	return populateRun(&b, createdAtStr)
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.BatchRun, error) {
	query := `SELECT id, plan, scenarios, successes, success_pct, created_at
		FROM batch_runs ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent batch runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.BatchRun
	for rows.Next() {
		var b domain.BatchRun
		var createdAtStr string
		if err := rows.Scan(&b.ID, &b.Plan, &b.Scenarios, &b.Successes, &b.SuccessPct, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning batch run row: %w", err)
		}
		run, parseErr := populateRun(&b, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating batch runs: %w", err)
	}
	return runs, nil
}

// populateRun fills in parsed fields after scanning raw strings.
func populateRun(b *domain.BatchRun, createdAtStr string) (*domain.BatchRun, error) {
	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return b, nil
}
