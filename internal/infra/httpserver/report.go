package httpserver

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	appreport "github.com/bryanwahyu/roi-simulator/internal/application/report"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/middleware"
)

// POST /report/generate
// Body: {"email": "...", "scenario_id": 1} or {"email": "...", "inputs": {...}}
// or {"email": "...", "results": {...}}. Send Accept: application/pdf for
// the raw file instead of base64 JSON.
func (r *Router) handleGenerateReport(w http.ResponseWriter, req *http.Request) error {
	var body reportRequest
	if err := decode(req, &body); err != nil {
		return err
	}
	email, err := middleware.ValidateEmail(body.Email)
	if err != nil {
		return err
	}

	cmd := appreport.GenerateCommand{
		Email:        email,
		ScenarioName: middleware.SanitizeString(body.ScenarioName),
		Results:      body.Results,
	}
	if body.ScenarioID != nil {
		if *body.ScenarioID <= 0 {
			return fmt.Errorf("%w: scenario_id must be positive", middleware.ErrValidation)
		}
		id := scenarios.ScenarioID(*body.ScenarioID)
		cmd.ScenarioID = &id
	}
	// a saved scenario carries its own inputs
	if body.Inputs != nil && cmd.ScenarioID == nil {
		in, err := body.Inputs.toInputs()
		if err != nil {
			return err
		}
		cmd.Inputs = &in
	}

	doc, err := r.reportSvc.Generate(req.Context(), cmd)
	if err != nil {
		middleware.IncrementReportsFailed()
		return err
	}
	middleware.IncrementReports()

	if wantsPDF(req) {
		w.Header().Set("Content-Type", doc.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
		w.Header().Set("Content-Length", strconv.Itoa(doc.SizeBytes))
		if doc.URL != "" {
			w.Header().Set("Content-Location", doc.URL)
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(doc.Data)
		return err
	}

	return writeJSON(w, http.StatusOK, envelope{"report": doc})
}

func wantsPDF(req *http.Request) bool {
	for _, part := range strings.Split(req.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == domain.ContentTypePDF {
			return true
		}
	}
	return false
}
