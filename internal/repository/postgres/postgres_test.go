package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/health-indicators/pkg/metrics"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *metrics.Metrics) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock, metrics.New("seeder")
}

func TestExecScript_Commits(t *testing.T) {
	db, mock, m := setupMockDB(t)
	repo := NewHealthIndicatorRepository(NewBaseRepository(db, m))

	script := "INSERT INTO public.health_indicators (id) VALUES ('a');\nINSERT INTO public.health_indicators (id) VALUES ('b');"
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO public\.health_indicators`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ExecScript(context.Background(), script))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("exec_script", "success")))
}

func TestExecScript_RollsBack(t *testing.T) {
	db, mock, m := setupMockDB(t)
	repo := NewHealthIndicatorRepository(NewBaseRepository(db, m))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO`).WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	err := repo.ExecScript(context.Background(), "INSERT INTO public.health_indicators (id) VALUES ('a');")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violates foreign key constraint")
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("exec_script", "error")))
}

func TestExecScript_EmptyIsNoop(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewHealthIndicatorRepository(NewBaseRepository(db, nil))

	require.NoError(t, repo.ExecScript(context.Background(), "  \n"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewHealthIndicatorRepository(NewBaseRepository(db, nil))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM public\.health_indicators`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(35))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 35, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResidentIDs(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewResidentRepository(NewBaseRepository(db, nil))

	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT id FROM public\.residents`).
		WithArgs("Abella").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(first.String()).AddRow(second.String()))

	ids, err := repo.ResidentIDs(context.Background(), "Abella")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResidentIDs_Error(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewResidentRepository(NewBaseRepository(db, nil))

	mock.ExpectQuery(`SELECT id FROM public\.residents`).
		WithArgs("Sabang").
		WillReturnError(errors.New("relation \"public.residents\" does not exist"))

	ids, err := repo.ResidentIDs(context.Background(), "Sabang")
	assert.Nil(t, ids)
	assert.ErrorContains(t, err, "failed to list residents of Sabang")
}
