package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

const scenariosTable = `
CREATE TABLE IF NOT EXISTS roi_scenarios (
  id BIGINT NOT NULL AUTO_INCREMENT,
  scenario_name VARCHAR(255) NOT NULL,
  monthly_invoice_volume DOUBLE NOT NULL,
  num_ap_staff DOUBLE NOT NULL,
  avg_hours_per_invoice DOUBLE NOT NULL,
  hourly_wage DOUBLE NOT NULL,
  error_rate_manual DOUBLE NOT NULL,
  error_cost DOUBLE NOT NULL,
  time_horizon_months INT NOT NULL,
  one_time_implementation_cost DOUBLE NOT NULL,
  monthly_savings DOUBLE NOT NULL,
  cumulative_savings DOUBLE NOT NULL,
  net_savings DOUBLE NOT NULL,
  payback_months DOUBLE NULL,
  roi_percentage DOUBLE NOT NULL,
  created_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  KEY idx_roi_scenarios_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

// EnsureSchema creates the scenarios table when missing
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, scenariosTable); err != nil {
		return fmt.Errorf("creating roi_scenarios: %w", err)
	}
	return nil
}
