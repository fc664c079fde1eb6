package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/health-indicators/internal/repository"
)

type residentRepository struct {
	BaseRepository
}

func NewResidentRepository(base BaseRepository) repository.ResidentRepository {
	return &residentRepository{base}
}

func (r *residentRepository) ResidentIDs(ctx context.Context, barangay string) (ids []uuid.UUID, err error) {
	start := time.Now()
	defer func() { r.observe("resident_ids", start, err) }()

	query := `
		SELECT id FROM public.residents
		WHERE barangay = $1
		ORDER BY id
	`
	ids = []uuid.UUID{}
	if err = r.GetDB().SelectContext(ctx, &ids, query, barangay); err != nil {
		return nil, fmt.Errorf("failed to list residents of %s: %w", barangay, err)
	}
	return ids, nil
}
