package ports

import (
	"context"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
)

type RoundRepo interface {
	Create(ctx context.Context, r *domain.Round) error
	GetByID(ctx context.Context, id string) (*domain.Round, error)
	ListActive(ctx context.Context) ([]*domain.Round, error)
	ListAll(ctx context.Context) ([]*domain.Round, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Round, error)
}
