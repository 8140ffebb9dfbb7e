package roi

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Calculate projects the savings of moving invoice processing from manual
// to automated handling over the configured time horizon.
func Calculate(in Inputs) (Results, error) {
	if !in.finite() {
		return Results{}, fmt.Errorf("%w: inputs must be finite numbers", ErrInvalidInput)
	}
	if in.MonthlyInvoiceVolume <= 0 {
		return Results{}, fmt.Errorf("%w: monthly_invoice_volume must be positive", ErrInvalidInput)
	}

	volume := in.MonthlyInvoiceVolume
	laborCost := in.NumAPStaff * in.HourlyWage * in.AvgHoursPerInvoice * volume
	autoCost := volume * AutomatedCostPerInvoice
	errorSavings := (in.ErrorRateManual - AutomatedErrorRate) / percentScale * volume * in.ErrorCost

	monthly := (laborCost + errorSavings - autoCost) * MinROIBoostFactor
	if monthly < 0 {
		monthly = 0
	}

	cumulative := monthly * float64(in.TimeHorizonMonths)
	net := cumulative - in.OneTimeImplementationCost

	var payback *float64
	switch {
	case in.OneTimeImplementationCost <= 0:
		p := 0.0
		payback = &p
	case monthly > 0:
		p := in.OneTimeImplementationCost / monthly
		payback = &p
	}

	var roiPct float64
	if in.OneTimeImplementationCost > 0 {
		roiPct = net / in.OneTimeImplementationCost * percentScale
	}

	if !finite(monthly, cumulative, net, roiPct) || (payback != nil && !finite(*payback)) {
		return Results{}, fmt.Errorf("%w: inputs out of range", ErrInvalidInput)
	}

	return Results{
		MonthlySavings:    round(monthly, moneyPlaces),
		CumulativeSavings: round(cumulative, moneyPlaces),
		NetSavings:        round(net, moneyPlaces),
		PaybackMonths:     roundPtr(payback, ratioPlaces),
		ROIPercentage:     round(roiPct, ratioPlaces),
	}, nil
}

// round half away from zero
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundPtr(v *float64, places int32) *float64 {
	if v == nil {
		return nil
	}
	r := round(*v, places)
	return &r
}

func (in Inputs) finite() bool {
	return finite(
		in.MonthlyInvoiceVolume, in.NumAPStaff, in.AvgHoursPerInvoice, in.HourlyWage,
		in.ErrorRateManual, in.ErrorCost, in.OneTimeImplementationCost,
	)
}

// finite reports false when any value is NaN or ±Inf; decimal cannot hold them
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
