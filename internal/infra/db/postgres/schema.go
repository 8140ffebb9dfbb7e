package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS roi_scenarios (
  id BIGSERIAL PRIMARY KEY,
  scenario_name VARCHAR(255) NOT NULL,
  monthly_invoice_volume DOUBLE PRECISION NOT NULL,
  num_ap_staff DOUBLE PRECISION NOT NULL,
  avg_hours_per_invoice DOUBLE PRECISION NOT NULL,
  hourly_wage DOUBLE PRECISION NOT NULL,
  error_rate_manual DOUBLE PRECISION NOT NULL,
  error_cost DOUBLE PRECISION NOT NULL,
  time_horizon_months INTEGER NOT NULL,
  one_time_implementation_cost DOUBLE PRECISION NOT NULL,
  monthly_savings DOUBLE PRECISION NOT NULL,
  cumulative_savings DOUBLE PRECISION NOT NULL,
  net_savings DOUBLE PRECISION NOT NULL,
  payback_months DOUBLE PRECISION NULL,
  roi_percentage DOUBLE PRECISION NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	`CREATE INDEX IF NOT EXISTS idx_roi_scenarios_created_at ON roi_scenarios (created_at);`,
}

// EnsureSchema creates the scenarios table and index when missing
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
