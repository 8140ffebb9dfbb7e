package report

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bryanwahyu/roi-simulator/internal/application"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	"github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

// ScenarioSource is the read side of the scenario store
type ScenarioSource interface {
	Get(ctx context.Context, id scenarios.ScenarioID) (*scenarios.Scenario, error)
}

// Service builds report documents. Archive and Narrator are optional.
type Service struct {
	Renderer  domain.Renderer
	Scenarios ScenarioSource
	Archive   domain.Archive
	Narrator  domain.Narrator
	Clock     application.Clock
	NewID     func() string
}

// Command untuk generate report. ScenarioID wins over Results, Results
// over Inputs.
type GenerateCommand struct {
	Email        string
	ScenarioID   *scenarios.ScenarioID
	ScenarioName string
	Inputs       *roi.Inputs
	Results      *roi.Results
}

// maxNarrative keeps the commentary on the single report page
const maxNarrative = 900

var slugRx = regexp.MustCompile(`[^a-z0-9]+`)

// Generate renders the one-page summary. The email is only logged.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (domain.Document, error) {
	logger := zerolog.Ctx(ctx)

	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return domain.Document{}, fmt.Errorf("%w: email is required", roi.ErrInvalidInput)
	}

	summary, err := s.resolve(ctx, cmd)
	if err != nil {
		return domain.Document{}, err
	}
	summary.Recipient = email
	summary.GeneratedAt = s.Clock.Now()

	if s.Narrator != nil {
		text, err := s.Narrator.Narrate(ctx, summary)
		switch {
		case errors.Is(err, domain.ErrQuotaExceeded):
			logger.Warn().Msg("narrative quota exceeded, rendering static report")
		case err != nil:
			logger.Warn().Err(err).Msg("narrative failed, rendering static report")
		default:
			summary.Narrative = clip(strings.TrimSpace(text), maxNarrative)
		}
	}

	data, err := s.Renderer.Render(summary)
	if err != nil {
		return domain.Document{}, fmt.Errorf("rendering report: %w", err)
	}

	doc := domain.Document{
		Filename:    filename(summary),
		ContentType: domain.ContentTypePDF,
		SizeBytes:   len(data),
		Data:        data,
	}

	if s.Archive != nil {
		key := fmt.Sprintf("reports/%s/%s.pdf", summary.GeneratedAt.Format("2006/01"), s.newID())
		url, err := s.Archive.Put(ctx, key, data, domain.ContentTypePDF)
		if err != nil {
			logger.Error().Err(err).Str("key", key).Msg("report archive failed")
		} else {
			doc.URL = url
		}
	}

	logger.Info().
		Str("email", email).
		Str("scenario", summary.ScenarioName).
		Int("size_bytes", doc.SizeBytes).
		Msg("report generated")

	return doc, nil
}

func (s *Service) resolve(ctx context.Context, cmd GenerateCommand) (domain.Summary, error) {
	switch {
	case cmd.ScenarioID != nil:
		if s.Scenarios == nil {
			return domain.Summary{}, fmt.Errorf("%w: scenario lookup unavailable", roi.ErrInvalidInput)
		}
		sc, err := s.Scenarios.Get(ctx, *cmd.ScenarioID)
		if err != nil {
			return domain.Summary{}, err
		}
		in := sc.Inputs
		return domain.Summary{ScenarioName: sc.Name, Inputs: &in, Results: sc.Results}, nil

	case cmd.Results != nil:
		return domain.Summary{ScenarioName: cmd.ScenarioName, Inputs: cmd.Inputs, Results: *cmd.Results}, nil

	case cmd.Inputs != nil:
		res, err := roi.Calculate(*cmd.Inputs)
		if err != nil {
			return domain.Summary{}, err
		}
		return domain.Summary{ScenarioName: cmd.ScenarioName, Inputs: cmd.Inputs, Results: res}, nil
	}
	return domain.Summary{}, fmt.Errorf("%w: one of scenario_id, results or inputs is required", roi.ErrInvalidInput)
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func filename(s domain.Summary) string {
	slug := strings.Trim(slugRx.ReplaceAllString(strings.ToLower(s.ScenarioName), "-"), "-")
	if slug == "" {
		slug = "summary"
	}
	return fmt.Sprintf("roi-report-%s-%s.pdf", slug, s.GeneratedAt.Format("20060102"))
}

// clip cuts s to at most n runes, backing off to the last space
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "..."
}
