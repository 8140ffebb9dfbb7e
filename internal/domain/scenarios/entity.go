package scenarios

import (
	"errors"
	"time"

	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

// ErrNotFound is returned when no scenario matches the requested id.
var ErrNotFound = errors.New("scenario not found")

// ScenarioID tipe untuk Scenario
type ScenarioID int64

// Aggregate Root: Scenario. Immutable once computed.
type Scenario struct {
	ID   ScenarioID `json:"id"`
	Name string     `json:"scenario_name"`
	roi.Inputs
	roi.Results
	CreatedAt time.Time `json:"created_at"`
}

// Summary is the list projection of a Scenario
type Summary struct {
	ID             ScenarioID `json:"id"`
	Name           string     `json:"scenario_name"`
	MonthlySavings float64    `json:"monthly_savings"`
	PaybackMonths  *float64   `json:"payback_months"`
	ROIPercentage  float64    `json:"roi_percentage"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Summarize projects the scenario down to its list fields.
func (s *Scenario) Summarize() Summary {
	return Summary{
		ID:             s.ID,
		Name:           s.Name,
		MonthlySavings: s.MonthlySavings,
		PaybackMonths:  s.PaybackMonths,
		ROIPercentage:  s.ROIPercentage,
		CreatedAt:      s.CreatedAt,
	}
}
