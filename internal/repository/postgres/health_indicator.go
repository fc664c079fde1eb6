package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/health-indicators/internal/repository"
)

type healthIndicatorRepository struct {
	BaseRepository
}

func NewHealthIndicatorRepository(base BaseRepository) repository.HealthIndicatorRepository {
	return &healthIndicatorRepository{base}
}

// ExecScript runs a whole rendered document in one transaction; either every
// statement lands or none does.
func (r *healthIndicatorRepository) ExecScript(ctx context.Context, script string) (err error) {
	start := time.Now()
	defer func() { r.observe("exec_script", start, err) }()

	if strings.TrimSpace(script) == "" {
		return nil
	}

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, script); err != nil {
			return fmt.Errorf("failed to execute health indicator script: %w", err)
		}
		return nil
	})
	return err
}

func (r *healthIndicatorRepository) Count(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { r.observe("count", start, err) }()

	query := `SELECT COUNT(*) FROM public.health_indicators`
	if err = r.GetDB().GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("failed to count health indicators: %w", err)
	}
	return n, nil
}
