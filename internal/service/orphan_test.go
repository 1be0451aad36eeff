package service

import (
	"context"
	"errors"
	"testing"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrphanService_SweepOrphans(t *testing.T) {
	repo := mocks.NewMockOrphanRepo(t)
	storage := mocks.NewMockEvidenceStorage(t)
	svc := NewOrphanService(repo, storage, newTestLogger(t))

	repo.EXPECT().ListOldest(mock.Anything, 10).Return([]*domain.OrphanedUpload{
		{ID: "o1", ObjectKey: "id-card/a.jpg"},
		{ID: "o2", ObjectKey: "payment-slip/b.pdf", Attempts: 2},
	}, nil)

	storage.EXPECT().Delete(mock.Anything, "id-card/a.jpg").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "o1").Return(nil)

	storage.EXPECT().Delete(mock.Anything, "payment-slip/b.pdf").Return(errors.New("still down"))
	repo.EXPECT().MarkAttempt(mock.Anything, "o2").Return(nil)

	removed, err := svc.SweepOrphans(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestOrphanService_SweepOrphans_ListError(t *testing.T) {
	repo := mocks.NewMockOrphanRepo(t)
	svc := NewOrphanService(repo, mocks.NewMockEvidenceStorage(t), newTestLogger(t))

	repo.EXPECT().ListOldest(mock.Anything, 5).Return(nil, errors.New("db down"))

	removed, err := svc.SweepOrphans(context.Background(), 5)

	require.Error(t, err)
	assert.Zero(t, removed)
}

func TestOrphanService_SweepOrphans_SaturatedBatch(t *testing.T) {
	repo := mocks.NewMockOrphanRepo(t)
	storage := mocks.NewMockEvidenceStorage(t)
	svc := NewOrphanService(repo, storage, newTestLogger(t))

	// вся пачка из объектов, которые не удаляются; каждая попытка учитывается,
	// чтобы в следующий раз они уступили место новым записям
	repo.EXPECT().ListOldest(mock.Anything, 2).Return([]*domain.OrphanedUpload{
		{ID: "o1", ObjectKey: "id-card/a.jpg", Attempts: 7},
		{ID: "o2", ObjectKey: "id-card/b.jpg", Attempts: 7},
	}, nil)
	storage.EXPECT().Delete(mock.Anything, mock.Anything).Return(errors.New("AccessDenied")).Times(2)
	repo.EXPECT().MarkAttempt(mock.Anything, "o1").Return(nil)
	repo.EXPECT().MarkAttempt(mock.Anything, "o2").Return(nil)

	removed, err := svc.SweepOrphans(context.Background(), 2)

	require.NoError(t, err)
	assert.Zero(t, removed)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
