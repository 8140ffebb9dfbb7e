package report

import (
	"time"

	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

const ContentTypePDF = "application/pdf"

// Summary is everything a rendered report shows. Inputs is optional because
// callers may only hold precomputed results.
type Summary struct {
	ScenarioName string
	Recipient    string
	Inputs       *roi.Inputs
	Results      roi.Results
	Narrative    string
	GeneratedAt  time.Time
}

// Document is a rendered report
type Document struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
	URL         string `json:"url,omitempty"`
	Data        []byte `json:"data"`
}
