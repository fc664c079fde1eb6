package resident

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResidentRepository struct {
	mock.Mock
}

func (m *mockResidentRepository) ResidentIDs(ctx context.Context, barangay string) ([]uuid.UUID, error) {
	args := m.Called(ctx, barangay)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func TestPool_CachesPerBarangay(t *testing.T) {
	repo := new(mockResidentRepository)
	abella := []uuid.UUID{uuid.New(), uuid.New()}
	repo.On("ResidentIDs", mock.Anything, "Abella").Return(abella, nil).Once()
	repo.On("ResidentIDs", mock.Anything, "Sabang").Return([]uuid.UUID{}, nil).Once()

	pool := NewPool(repo, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ids, err := pool.ResidentIDs(ctx, "Abella")
		require.NoError(t, err)
		assert.Equal(t, abella, ids)

		ids, err = pool.ResidentIDs(ctx, "Sabang")
		require.NoError(t, err)
		assert.Empty(t, ids)
	}

	repo.AssertExpectations(t)
}

func TestPool_DoesNotCacheErrors(t *testing.T) {
	repo := new(mockResidentRepository)
	repo.On("ResidentIDs", mock.Anything, "Balao").Return(nil, errors.New("connection refused")).Once()
	repo.On("ResidentIDs", mock.Anything, "Balao").Return([]uuid.UUID{uuid.New()}, nil).Once()

	pool := NewPool(repo, 0)

	_, err := pool.ResidentIDs(context.Background(), "Balao")
	assert.ErrorContains(t, err, "connection refused")

	ids, err := pool.ResidentIDs(context.Background(), "Balao")
	require.NoError(t, err)
	assert.Len(t, ids, 1)
	repo.AssertExpectations(t)
}
