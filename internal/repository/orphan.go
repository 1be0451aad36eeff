package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrphanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrphanRepo(db *dbpg.DB) *OrphanRepository {
	return &OrphanRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *OrphanRepository) Record(ctx context.Context, key, reason string) error {
	query := `INSERT INTO orphaned_uploads (id, object_key, reason, attempts, created_at)
			  VALUES ($1, $2, $3, 0, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, uuid.New().String(), key, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert orphaned upload: %w", err)
	}

	return nil
}

// ListOldest отдаёт сначала записи с наименьшим числом попыток, чтобы
// неудаляемые объекты не занимали всю пачку.
func (r *OrphanRepository) ListOldest(ctx context.Context, limit int) ([]*domain.OrphanedUpload, error) {
	query := `SELECT id, object_key, reason, attempts, created_at
			  FROM orphaned_uploads
			  ORDER BY attempts ASC, created_at ASC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orphaned uploads: %w", err)
	}
	defer rows.Close()

	var res []*domain.OrphanedUpload
	for rows.Next() {
		var o domain.OrphanedUpload
		if err = rows.Scan(&o.ID, &o.ObjectKey, &o.Reason, &o.Attempts, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan orphaned upload: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

func (r *OrphanRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orphaned_uploads WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("delete orphaned upload: %w", err)
	}

	return nil
}

func (r *OrphanRepository) MarkAttempt(ctx context.Context, id string) error {
	query := `UPDATE orphaned_uploads SET attempts = attempts + 1 WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark orphaned upload attempt: %w", err)
	}

	return nil
}
