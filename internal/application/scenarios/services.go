package scenarios

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bryanwahyu/roi-simulator/internal/application"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements use-cases untuk Scenario
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// Command untuk simpan scenario
type CreateScenarioCommand struct {
	Name   string
	Inputs roi.Inputs
}

// Simulate runs the projection without persisting anything
func (s *Service) Simulate(in roi.Inputs) (roi.Results, error) {
	return roi.Calculate(in)
}

// Create computes the projection and stores it as a named scenario
func (s *Service) Create(ctx context.Context, cmd CreateScenarioCommand) (*domain.Scenario, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: scenario_name is required", roi.ErrInvalidInput)
	}

	res, err := roi.Calculate(cmd.Inputs)
	if err != nil {
		return nil, err
	}

	sc := &domain.Scenario{
		Name:      name,
		Inputs:    cmd.Inputs,
		Results:   res,
		// SQL columns keep microseconds only
		CreatedAt: s.Clock.Now().Truncate(time.Microsecond),
	}
	if err := s.Repo.Create(ctx, sc); err != nil {
		return nil, fmt.Errorf("saving scenario: %w", err)
	}
	return sc, nil
}

// List ambil satu halaman summary, newest first
func (s *Service) List(ctx context.Context, page, pageSize int) (domain.PaginatedResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, err := s.Repo.List(ctx, page, pageSize)
	if err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("listing scenarios: %w", err)
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("counting scenarios: %w", err)
	}
	if rows == nil {
		rows = []domain.Summary{}
	}

	return domain.PaginatedResult{
		Data:       rows,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// Get ambil 1 scenario by id
func (s *Service) Get(ctx context.Context, id domain.ScenarioID) (*domain.Scenario, error) {
	return s.Repo.Get(ctx, id)
}

// Delete hapus 1 scenario by id
func (s *Service) Delete(ctx context.Context, id domain.ScenarioID) error {
	return s.Repo.Delete(ctx, id)
}
