package service

import (
	"context"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type CatalogService struct {
	repo   ports.RoundRepo
	logger logger.Logger
}

func NewCatalogService(repo ports.RoundRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// ListActiveRounds returns the rounds applicants can book.
// A failed fetch is reported as domain.ErrCatalogUnavailable, never as an empty list.
func (s *CatalogService) ListActiveRounds(ctx context.Context) ([]*domain.Round, error) {
	rounds, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load active rounds",
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	return rounds, nil
}

func (s *CatalogService) ListRounds(ctx context.Context) ([]*domain.Round, error) {
	return s.repo.ListAll(ctx)
}

func (s *CatalogService) CreateRound(ctx context.Context, input domain.CreateRoundInput) (*domain.Round, error) {
	if input.ExamDate.IsZero() {
		return nil, fmt.Errorf("%w: exam_date is required", domain.ErrValidation)
	}
	if !input.TimeSlot.Valid() {
		return nil, fmt.Errorf("%w: exam_time must be Morning or Afternoon", domain.ErrValidation)
	}
	if input.MaxSeats <= 0 {
		return nil, fmt.Errorf("%w: max_seats must be positive", domain.ErrValidation)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	round := &domain.Round{
		ID:        uuid.New().String(),
		ExamDate:  input.ExamDate,
		TimeSlot:  input.TimeSlot,
		MaxSeats:  input.MaxSeats,
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, round); err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}

	s.logger.Info("exam round created",
		logger.String("round_id", round.ID),
		logger.String("exam_date", round.ExamDate.Format(time.DateOnly)),
		logger.String("exam_time", string(round.TimeSlot)),
		logger.Int("max_seats", round.MaxSeats),
	)

	return round, nil
}

func (s *CatalogService) SetRoundActive(ctx context.Context, id string, active bool) (*domain.Round, error) {
	round, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("set round active: %w", err)
	}

	s.logger.Info("exam round availability changed",
		logger.String("round_id", id),
		logger.Any("is_active", active),
	)

	return round, nil
}
