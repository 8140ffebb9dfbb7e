// Package db memilih repository scenario sesuai database.driver.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bryanwahyu/roi-simulator/internal/config"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/infra/db/memory"
	"github.com/bryanwahyu/roi-simulator/internal/infra/db/mysql"
	"github.com/bryanwahyu/roi-simulator/internal/infra/db/postgres"
)

// Store bundles the open handle with the repository built on it.
// DB is nil for the memory driver.
type Store struct {
	Driver    string
	DB        *sql.DB
	Scenarios domain.Repository
}

// Open connects to the configured driver. It does not create tables; call Migrate.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		conn, err := mysql.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("connecting mysql: %w", err)
		}
		return &Store{Driver: config.DriverMySQL, DB: conn, Scenarios: mysql.NewScenarioRepository(conn)}, nil
	case config.DriverPostgres:
		conn, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("connecting postgres: %w", err)
		}
		return &Store{Driver: config.DriverPostgres, DB: conn, Scenarios: postgres.NewScenarioRepository(conn)}, nil
	case config.DriverMemory:
		return &Store{Driver: config.DriverMemory, Scenarios: memory.NewScenarioRepository()}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// Migrate creates the roi_scenarios table if it is missing.
func (s *Store) Migrate(ctx context.Context) error {
	switch s.Driver {
	case config.DriverMySQL:
		return mysql.EnsureSchema(ctx, s.DB)
	case config.DriverPostgres:
		return postgres.EnsureSchema(ctx, s.DB)
	}
	return nil
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
