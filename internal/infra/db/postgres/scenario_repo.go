package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

const scenarioColumns = `id, scenario_name,
       monthly_invoice_volume, num_ap_staff, avg_hours_per_invoice, hourly_wage,
       error_rate_manual, error_cost, time_horizon_months, one_time_implementation_cost,
       monthly_savings, cumulative_savings, net_savings, payback_months, roi_percentage,
       created_at`

type ScenarioRepository struct{ db *sql.DB }

func NewScenarioRepository(db *sql.DB) *ScenarioRepository { return &ScenarioRepository{db: db} }

// Create insert Scenario record, id comes back via RETURNING
func (r *ScenarioRepository) Create(ctx context.Context, s *domain.Scenario) error {
	const q = `
INSERT INTO roi_scenarios
(scenario_name,
 monthly_invoice_volume, num_ap_staff, avg_hours_per_invoice, hourly_wage,
 error_rate_manual, error_cost, time_horizon_months, one_time_implementation_cost,
 monthly_savings, cumulative_savings, net_savings, payback_months, roi_percentage,
 created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,
        $9,$10,$11,$12,$13,$14,$15)
RETURNING id;`

	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	// TIMESTAMPTZ keeps microseconds
	created = created.Truncate(time.Microsecond)

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		s.Name,
		s.MonthlyInvoiceVolume, s.NumAPStaff, s.AvgHoursPerInvoice, s.HourlyWage,
		s.ErrorRateManual, s.ErrorCost, s.TimeHorizonMonths, s.OneTimeImplementationCost,
		s.MonthlySavings, s.CumulativeSavings, s.NetSavings, nullFloat(s.PaybackMonths), s.ROIPercentage,
		created,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	s.ID = domain.ScenarioID(id)
	s.CreatedAt = created
	return nil
}

// Get by ID
func (r *ScenarioRepository) Get(ctx context.Context, id domain.ScenarioID) (*domain.Scenario, error) {
	q := `SELECT ` + scenarioColumns + ` FROM roi_scenarios WHERE id=$1 LIMIT 1;`
	s, err := scanScenario(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns summary rows, newest first
func (r *ScenarioRepository) List(ctx context.Context, page, pageSize int) ([]domain.Summary, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, scenario_name, monthly_savings, payback_months, roi_percentage, created_at
FROM roi_scenarios
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2;`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var out []domain.Summary
	for rows.Next() {
		var s domain.Summary
		var payback sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &s.MonthlySavings, &payback, &s.ROIPercentage, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		s.PaybackMonths = floatPtr(payback)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the total number of scenarios
func (r *ScenarioRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roi_scenarios;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete by ID
func (r *ScenarioRepository) Delete(ctx context.Context, id domain.ScenarioID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roi_scenarios WHERE id=$1;`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanScenario(row rowScanner) (*domain.Scenario, error) {
	var s domain.Scenario
	var payback sql.NullFloat64
	if err := row.Scan(
		&s.ID, &s.Name,
		&s.MonthlyInvoiceVolume, &s.NumAPStaff, &s.AvgHoursPerInvoice, &s.HourlyWage,
		&s.ErrorRateManual, &s.ErrorCost, &s.TimeHorizonMonths, &s.OneTimeImplementationCost,
		&s.MonthlySavings, &s.CumulativeSavings, &s.NetSavings, &payback, &s.ROIPercentage,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.PaybackMonths = floatPtr(payback)
	return &s, nil
}
