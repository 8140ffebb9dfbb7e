package scenarios

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	// Create inserts s and fills in its generated ID.
	Create(ctx context.Context, s *Scenario) error
	Get(ctx context.Context, id ScenarioID) (*Scenario, error)
	List(ctx context.Context, page, pageSize int) ([]Summary, error)
	Count(ctx context.Context) (int64, error)
	// Delete returns ErrNotFound when no row was removed.
	Delete(ctx context.Context, id ScenarioID) error
}
