package repository

import (
	"context"

	"github.com/google/uuid"
)

// All repository interfaces in one file
type (
	// HealthIndicatorRepository loads rendered statements into public.health_indicators
	HealthIndicatorRepository interface {
		ExecScript(ctx context.Context, script string) error
		Count(ctx context.Context) (int, error)
	}

	// ResidentRepository resolves the residents indicators may reference
	ResidentRepository interface {
		ResidentIDs(ctx context.Context, barangay string) ([]uuid.UUID, error)
	}
)
