package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

// GetSystemPrompt provides strict directions for the report commentary.
func GetSystemPrompt() string {
	return `You are a finance analyst writing for an accounts payable manager. Write one short paragraph (at most 90 words) of plain text commentary on an invoice automation ROI projection.

Requirements:
- Plain text only: no markdown, no bullet points, no headings.
- Only use the figures provided. Do not invent numbers.
- Mention the payback period and the ROI percentage.
- If payback_months is null, say that the projection never pays back.
- Keep a neutral, factual tone.`
}

type facts struct {
	Scenario string      `json:"scenario,omitempty"`
	Inputs   *roi.Inputs `json:"inputs,omitempty"`
	Results  roi.Results `json:"results"`
	Assumed  assumptions `json:"assumptions"`
}

type assumptions struct {
	AutomatedCostPerInvoice float64 `json:"automated_cost_per_invoice"`
	AutomatedErrorRate      float64 `json:"automated_error_rate_percent"`
}

// GetUserPrompt serialises the projection as compact JSON. The recipient is left out.
func GetUserPrompt(s report.Summary) string {
	b, _ := json.Marshal(facts{
		Scenario: s.ScenarioName,
		Inputs:   s.Inputs,
		Results:  s.Results,
		Assumed: assumptions{
			AutomatedCostPerInvoice: roi.AutomatedCostPerInvoice,
			AutomatedErrorRate:      roi.AutomatedErrorRate,
		},
	})
	return fmt.Sprintf("Write the commentary for this projection: %s", b)
}
