package ports

import (
	"context"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
)

type EvidenceStorage interface {
	Upload(ctx context.Context, key string, file *domain.Upload) (string, error)
	Delete(ctx context.Context, key string) error
}

type OrphanRepo interface {
	Record(ctx context.Context, key, reason string) error
	ListOldest(ctx context.Context, limit int) ([]*domain.OrphanedUpload, error)
	Delete(ctx context.Context, id string) error
	MarkAttempt(ctx context.Context, id string) error
}
