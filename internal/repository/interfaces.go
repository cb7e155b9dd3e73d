package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/rendezvous/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RunRepo stores batch-run summaries for the CLI's history view.
type RunRepo interface {
	Create(ctx context.Context, r *domain.BatchRun) error
	GetByID(ctx context.Context, id string) (*domain.BatchRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.BatchRun, error)
}
