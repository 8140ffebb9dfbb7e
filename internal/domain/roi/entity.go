package roi

import "errors"

// ErrInvalidInput is returned when the inputs cannot produce a projection.
var ErrInvalidInput = errors.New("invalid input")

// Inputs value object
type Inputs struct {
	MonthlyInvoiceVolume      float64 `json:"monthly_invoice_volume"`
	NumAPStaff                float64 `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64 `json:"avg_hours_per_invoice"`
	HourlyWage                float64 `json:"hourly_wage"`
	ErrorRateManual           float64 `json:"error_rate_manual"` // percent, e.g. 0.5 = 0.5%
	ErrorCost                 float64 `json:"error_cost"`
	TimeHorizonMonths         int     `json:"time_horizon_months"`
	OneTimeImplementationCost float64 `json:"one_time_implementation_cost"`
}

// Results value object. PaybackMonths is nil when savings never cover the
// implementation cost.
type Results struct {
	MonthlySavings    float64  `json:"monthly_savings"`
	CumulativeSavings float64  `json:"cumulative_savings"`
	NetSavings        float64  `json:"net_savings"`
	PaybackMonths     *float64 `json:"payback_months"`
	ROIPercentage     float64  `json:"roi_percentage"`
}
