package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/roi-simulator/internal/application"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/report"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	"github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
)

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(s domain.Summary) ([]byte, error) {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockArchive struct{ mock.Mock }

func (m *mockArchive) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

type mockNarrator struct{ mock.Mock }

func (m *mockNarrator) Narrate(ctx context.Context, s domain.Summary) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

type stubScenarios map[scenarios.ScenarioID]*scenarios.Scenario

func (s stubScenarios) Get(_ context.Context, id scenarios.ScenarioID) (*scenarios.Scenario, error) {
	sc, ok := s[id]
	if !ok {
		return nil, scenarios.ErrNotFound
	}
	return sc, nil
}

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func inputs() roi.Inputs {
	return roi.Inputs{
		MonthlyInvoiceVolume:      2000,
		NumAPStaff:                3,
		AvgHoursPerInvoice:        0.17,
		HourlyWage:                30,
		ErrorRateManual:           0.5,
		ErrorCost:                 100,
		TimeHorizonMonths:         36,
		OneTimeImplementationCost: 50000,
	}
}

func TestGenerate_FromPrecomputedResults(t *testing.T) {
	renderer := new(mockRenderer)
	renderer.On("Render", mock.MatchedBy(func(s domain.Summary) bool {
		return s.Recipient == "ap@example.com" && s.Results.MonthlySavings == 1000 &&
			s.Inputs == nil && s.GeneratedAt.Equal(now)
	})).Return([]byte("%PDF-1.3 body"), nil)

	svc := &Service{Renderer: renderer, Clock: application.FixedClock{T: now}}
	doc, err := svc.Generate(context.Background(), GenerateCommand{
		Email:        " ap@example.com ",
		ScenarioName: "Q3 Pilot!",
		Results:      &roi.Results{MonthlySavings: 1000},
	})

	require.NoError(t, err)
	assert.Equal(t, "roi-report-q3-pilot-20250314.pdf", doc.Filename)
	assert.Equal(t, domain.ContentTypePDF, doc.ContentType)
	assert.Equal(t, len("%PDF-1.3 body"), doc.SizeBytes)
	assert.Empty(t, doc.URL)
	renderer.AssertExpectations(t)
}

func TestGenerate_FromScenarioID(t *testing.T) {
	in := inputs()
	res, err := roi.Calculate(in)
	require.NoError(t, err)
	store := stubScenarios{4: {ID: 4, Name: "Baseline", Inputs: in, Results: res}}

	renderer := new(mockRenderer)
	renderer.On("Render", mock.MatchedBy(func(s domain.Summary) bool {
		return s.ScenarioName == "Baseline" && s.Inputs != nil && *s.Inputs == in && s.Results.ROIPercentage == res.ROIPercentage
	})).Return([]byte("pdf"), nil)

	svc := &Service{Renderer: renderer, Scenarios: store, Clock: application.FixedClock{T: now}}
	id := scenarios.ScenarioID(4)
	_, err = svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co", ScenarioID: &id})
	require.NoError(t, err)

	missing := scenarios.ScenarioID(5)
	_, err = svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co", ScenarioID: &missing})
	assert.ErrorIs(t, err, scenarios.ErrNotFound)
}

func TestGenerate_ComputesFromInputs(t *testing.T) {
	renderer := new(mockRenderer)
	renderer.On("Render", mock.MatchedBy(func(s domain.Summary) bool {
		return s.Results.MonthlySavings == 34100
	})).Return([]byte("pdf"), nil)

	in := inputs()
	svc := &Service{Renderer: renderer, Clock: application.FixedClock{T: now}}
	doc, err := svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co", Inputs: &in})
	require.NoError(t, err)
	assert.Equal(t, "roi-report-summary-20250314.pdf", doc.Filename)
}

func TestGenerate_Validation(t *testing.T) {
	svc := &Service{Renderer: new(mockRenderer), Clock: application.FixedClock{T: now}}

	_, err := svc.Generate(context.Background(), GenerateCommand{Results: &roi.Results{}})
	assert.ErrorIs(t, err, roi.ErrInvalidInput, "email required")

	_, err = svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co"})
	assert.ErrorIs(t, err, roi.ErrInvalidInput, "something to report on required")

	bad := inputs()
	bad.MonthlyInvoiceVolume = -1
	_, err = svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co", Inputs: &bad})
	assert.ErrorIs(t, err, roi.ErrInvalidInput)
}

func TestGenerate_ArchivesAndNarrates(t *testing.T) {
	ctx := context.Background()
	body := []byte("pdf-bytes")

	narrator := new(mockNarrator)
	narrator.On("Narrate", ctx, mock.Anything).Return("  Automation pays back fast. \n", nil)

	renderer := new(mockRenderer)
	renderer.On("Render", mock.MatchedBy(func(s domain.Summary) bool {
		return s.Narrative == "Automation pays back fast."
	})).Return(body, nil)

	archive := new(mockArchive)
	archive.On("Put", ctx, "reports/2025/03/fixed-id.pdf", body, domain.ContentTypePDF).
		Return("http://minio:9000/reports/2025/03/fixed-id.pdf", nil)

	svc := &Service{
		Renderer: renderer,
		Archive:  archive,
		Narrator: narrator,
		Clock:    application.FixedClock{T: now},
		NewID:    func() string { return "fixed-id" },
	}
	doc, err := svc.Generate(ctx, GenerateCommand{Email: "a@b.co", Results: &roi.Results{}})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/reports/2025/03/fixed-id.pdf", doc.URL)
	mock.AssertExpectationsForObjects(t, narrator, renderer, archive)
}

func TestGenerate_DegradesWhenOptionalPartsFail(t *testing.T) {
	ctx := context.Background()

	narrator := new(mockNarrator)
	narrator.On("Narrate", ctx, mock.Anything).Return("", fmt.Errorf("openai: %w", domain.ErrQuotaExceeded))

	renderer := new(mockRenderer)
	renderer.On("Render", mock.MatchedBy(func(s domain.Summary) bool { return s.Narrative == "" })).
		Return([]byte("pdf"), nil)

	archive := new(mockArchive)
	archive.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	svc := &Service{Renderer: renderer, Archive: archive, Narrator: narrator, Clock: application.FixedClock{T: now}}
	doc, err := svc.Generate(ctx, GenerateCommand{Email: "a@b.co", Results: &roi.Results{}})
	require.NoError(t, err)
	assert.Empty(t, doc.URL)
	assert.Equal(t, []byte("pdf"), doc.Data)
}

func TestGenerate_RenderFailure(t *testing.T) {
	renderer := new(mockRenderer)
	renderer.On("Render", mock.Anything).Return(nil, errors.New("font missing"))

	svc := &Service{Renderer: renderer, Clock: application.FixedClock{T: now}}
	_, err := svc.Generate(context.Background(), GenerateCommand{Email: "a@b.co", Results: &roi.Results{}})
	assert.ErrorContains(t, err, "rendering report")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "pays back...", clip("pays back quickly", 12))
	assert.Equal(t, "abcdefgh...", clip("abcdefghij", 8))
	assert.LessOrEqual(t, len([]rune(clip(strings.Repeat("word ", 400), maxNarrative))), maxNarrative+3)
}
