package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

// ScenarioRepository keeps scenarios in process memory. Used for local runs
// and tests; data is lost on restart.
type ScenarioRepository struct {
	mu     sync.RWMutex
	nextID domain.ScenarioID
	rows   map[domain.ScenarioID]domain.Scenario
}

func NewScenarioRepository() *ScenarioRepository {
	return &ScenarioRepository{rows: make(map[domain.ScenarioID]domain.Scenario)}
}

func (r *ScenarioRepository) Create(_ context.Context, s *domain.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.rows[s.ID] = clone(*s)
	return nil
}

func (r *ScenarioRepository) Get(_ context.Context, id domain.ScenarioID) (*domain.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := clone(s)
	return &out, nil
}

func (r *ScenarioRepository) List(_ context.Context, page, pageSize int) ([]domain.Summary, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	r.mu.RLock()
	all := make([]domain.Scenario, 0, len(r.rows))
	for _, s := range r.rows {
		all = append(all, s)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := min(start+pageSize, len(all))

	out := make([]domain.Summary, 0, end-start)
	for _, s := range all[start:end] {
		out = append(out, s.Summarize())
	}
	return out, nil
}

func (r *ScenarioRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *ScenarioRepository) Delete(_ context.Context, id domain.ScenarioID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// clone detaches the payback pointer so callers cannot mutate stored rows
func clone(s domain.Scenario) domain.Scenario {
	if s.PaybackMonths != nil {
		p := *s.PaybackMonths
		s.PaybackMonths = &p
	}
	return s
}
