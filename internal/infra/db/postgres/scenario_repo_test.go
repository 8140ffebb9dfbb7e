package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

var created = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newRepo(t *testing.T) (*ScenarioRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewScenarioRepository(db), mock
}

func TestScenarioRepository_CreateReturningID(t *testing.T) {
	repo, mock := newRepo(t)
	s := &domain.Scenario{
		Name:      "Baseline",
		Inputs:    roi.Inputs{MonthlyInvoiceVolume: 2000, TimeHorizonMonths: 36, OneTimeImplementationCost: 50000},
		Results:   roi.Results{MonthlySavings: 100},
		CreatedAt: created,
	}

	mock.ExpectQuery(`INSERT INTO roi_scenarios .+ RETURNING id`).
		WithArgs("Baseline", 2000.0, 0.0, 0.0, 0.0, 0.0, 0.0, 36, 50000.0,
			100.0, 0.0, 0.0, nil, 0.0, created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, domain.ScenarioID(5), s.ID)
}

func TestScenarioRepository_CreateTruncatesToMicroseconds(t *testing.T) {
	repo, mock := newRepo(t)
	want := created.Add(987654 * time.Microsecond)
	s := &domain.Scenario{Name: "Precise", CreatedAt: created.Add(987654321 * time.Nanosecond)}

	mock.ExpectQuery(`INSERT INTO roi_scenarios .+ RETURNING id`).
		WithArgs("Precise", 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0, 0.0,
			0.0, 0.0, 0.0, nil, 0.0, want).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, want, s.CreatedAt)
}

func TestScenarioRepository_RoundTripColumns(t *testing.T) {
	repo, mock := newRepo(t)
	cols := []string{
		"id", "scenario_name",
		"monthly_invoice_volume", "num_ap_staff", "avg_hours_per_invoice", "hourly_wage",
		"error_rate_manual", "error_cost", "time_horizon_months", "one_time_implementation_cost",
		"monthly_savings", "cumulative_savings", "net_savings", "payback_months", "roi_percentage",
		"created_at",
	}
	mock.ExpectQuery(`FROM roi_scenarios WHERE id=\$1`).
		WithArgs(domain.ScenarioID(5)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			5, "Baseline", 2000.0, 3.0, 0.17, 30.0, 0.5, 100.0, 36, 50000.0,
			34100.0, 1227600.0, 1177600.0, nil, 2355.2, created))

	got, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Baseline", got.Name)
	assert.Equal(t, 36, got.TimeHorizonMonths)
	assert.Equal(t, 34100.0, got.MonthlySavings)
	assert.Nil(t, got.PaybackMonths)
	assert.Equal(t, created, got.CreatedAt)
}

func TestScenarioRepository_GetMissing(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM roi_scenarios WHERE id=\$1`).
		WithArgs(domain.ScenarioID(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScenarioRepository_ListAndCount(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "scenario_name", "monthly_savings", "payback_months", "roi_percentage", "created_at"}).
			AddRow(1, "Baseline", 34100.0, 1.5, 2355.2, created))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM roi_scenarios`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Baseline", rows[0].Name)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestScenarioRepository_DeleteMissing(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`DELETE FROM roi_scenarios WHERE id=\$1`).
		WithArgs(domain.ScenarioID(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 8), domain.ErrNotFound)
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS roi_scenarios`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_roi_scenarios_created_at`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
