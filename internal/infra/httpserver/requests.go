package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	"github.com/bryanwahyu/roi-simulator/internal/middleware"
)

const maxBodyBytes = 1 << 20

// inputsRequest uses pointers so a missing field is told apart from zero
type inputsRequest struct {
	MonthlyInvoiceVolume      *float64 `json:"monthly_invoice_volume"`
	NumAPStaff                *float64 `json:"num_ap_staff"`
	AvgHoursPerInvoice        *float64 `json:"avg_hours_per_invoice"`
	HourlyWage                *float64 `json:"hourly_wage"`
	ErrorRateManual           *float64 `json:"error_rate_manual"`
	ErrorCost                 *float64 `json:"error_cost"`
	TimeHorizonMonths         *float64 `json:"time_horizon_months"`
	OneTimeImplementationCost *float64 `json:"one_time_implementation_cost"`
}

type scenarioRequest struct {
	ScenarioName string `json:"scenario_name"`
	inputsRequest
}

type reportRequest struct {
	Email        string         `json:"email"`
	ScenarioID   *int64         `json:"scenario_id"`
	ScenarioName string         `json:"scenario_name"`
	Inputs       *inputsRequest `json:"inputs"`
	Results      *roi.Results   `json:"results"`
}

func decode(req *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", middleware.ErrValidation, err)
	}
	return nil
}

// toInputs checks presence and ranges, then builds the value object
func (r inputsRequest) toInputs() (roi.Inputs, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"monthly_invoice_volume", r.MonthlyInvoiceVolume},
		{"num_ap_staff", r.NumAPStaff},
		{"avg_hours_per_invoice", r.AvgHoursPerInvoice},
		{"hourly_wage", r.HourlyWage},
		{"error_rate_manual", r.ErrorRateManual},
		{"error_cost", r.ErrorCost},
		{"time_horizon_months", r.TimeHorizonMonths},
		{"one_time_implementation_cost", r.OneTimeImplementationCost},
	}
	for _, f := range fields {
		if f.v == nil {
			return roi.Inputs{}, fmt.Errorf("%w: %s is required", middleware.ErrValidation, f.name)
		}
		if *f.v < 0 {
			return roi.Inputs{}, fmt.Errorf("%w: %s must not be negative", middleware.ErrValidation, f.name)
		}
	}
	if *r.MonthlyInvoiceVolume <= 0 {
		return roi.Inputs{}, fmt.Errorf("%w: monthly_invoice_volume must be greater than 0", middleware.ErrValidation)
	}
	horizon := *r.TimeHorizonMonths
	if horizon <= 0 || horizon != math.Trunc(horizon) || horizon > math.MaxInt32 {
		return roi.Inputs{}, fmt.Errorf("%w: time_horizon_months must be a positive whole number", middleware.ErrValidation)
	}

	return roi.Inputs{
		MonthlyInvoiceVolume:      *r.MonthlyInvoiceVolume,
		NumAPStaff:                *r.NumAPStaff,
		AvgHoursPerInvoice:        *r.AvgHoursPerInvoice,
		HourlyWage:                *r.HourlyWage,
		ErrorRateManual:           *r.ErrorRateManual,
		ErrorCost:                 *r.ErrorCost,
		TimeHorizonMonths:         int(horizon),
		OneTimeImplementationCost: *r.OneTimeImplementationCost,
	}, nil
}
