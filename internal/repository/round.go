package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roundColumns = `id, exam_date, exam_time, max_seats, current_seats, is_active, created_at`

// утро раньше обеда в пределах одной даты
const roundOrder = `ORDER BY exam_date ASC, CASE exam_time WHEN 'Morning' THEN 0 ELSE 1 END`

type RoundRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoundRepo(db *dbpg.DB) *RoundRepository {
	return &RoundRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(s rowScanner) (*domain.Round, error) {
	var r domain.Round
	if err := s.Scan(
		&r.ID, &r.ExamDate, &r.TimeSlot, &r.MaxSeats,
		&r.CurrentSeats, &r.IsActive, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RoundRepository) Create(ctx context.Context, round *domain.Round) error {
	query := `INSERT INTO exam_rounds (id, exam_date, exam_time, max_seats, current_seats, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		round.ID, round.ExamDate, round.TimeSlot, round.MaxSeats,
		round.CurrentSeats, round.IsActive, round.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}

	return nil
}

func (r *RoundRepository) GetByID(ctx context.Context, id string) (*domain.Round, error) {
	query := `SELECT ` + roundColumns + `
			  FROM exam_rounds
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("get round: %w", err)
	}

	round, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("scan round: %w", err)
	}

	return round, nil
}

func (r *RoundRepository) ListActive(ctx context.Context) ([]*domain.Round, error) {
	query := `SELECT ` + roundColumns + `
			  FROM exam_rounds
			  WHERE is_active = TRUE
			  ` + roundOrder

	return r.list(ctx, query)
}

func (r *RoundRepository) ListAll(ctx context.Context) ([]*domain.Round, error) {
	query := `SELECT ` + roundColumns + `
			  FROM exam_rounds
			  ` + roundOrder

	return r.list(ctx, query)
}

func (r *RoundRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Round, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Round, 0)
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		res = append(res, round)
	}

	return res, rows.Err()
}

func (r *RoundRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Round, error) {
	query := `UPDATE exam_rounds
			  SET is_active = $2
			  WHERE id = $1
			  RETURNING ` + roundColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("set round active: %w", err)
	}

	round, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("scan round: %w", err)
	}

	return round, nil
}
