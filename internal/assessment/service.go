package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"attest/internal/assessment/metrics"
	"attest/internal/catalog"
	"attest/internal/extract"
	"attest/pkg/requestcontext"
)

// Judge is the external language-model service that evaluates evidence
// against a sub-requirement. Calls may be slow, non-deterministic, and may
// return malformed output; the normalizer absorbs the latter.
type Judge interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// defaultParallelism bounds concurrent judge calls per control.
// Sub-requirement judgments are independent, so fanning out changes latency
// but not results: verdicts land in pre-indexed slots, keeping aggregation
// and evidence concatenation deterministic.
const defaultParallelism = 4

// Service runs the full assessment pipeline for one document.
type Service struct {
	catalog     *catalog.Catalog
	judge       Judge
	logger      *slog.Logger
	metrics     *metrics.Metrics
	maxParallel int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithParallelism(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxParallel = n
		}
	}
}

func New(cat *catalog.Catalog, judge Judge, opts ...Option) (*Service, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if judge == nil {
		return nil, fmt.Errorf("judge is required")
	}

	svc := &Service{
		catalog:     cat,
		judge:       judge,
		maxParallel: defaultParallelism,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Assess judges every catalog sub-requirement against the document and
// assembles the per-control rollups. Judge and parse failures are isolated
// to their sub-requirement as Error verdicts; a single bad completion never
// loses the rest of the report.
func (s *Service) Assess(ctx context.Context, doc *extract.Document) (*Report, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)
	text := doc.Text()

	report := &Report{Results: make([]ControlResult, 0, s.catalog.Len())}
	for _, ctrl := range s.catalog.Controls() {
		report.Results = append(report.Results, s.assessControl(ctx, ctrl, text, now))
	}

	s.metrics.ObserveAssessLatency(time.Since(start))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "document assessed",
			"request_id", requestcontext.RequestID(ctx),
			"document", doc.Title,
			"controls", len(report.Results),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return report, nil
}

func (s *Service) assessControl(ctx context.Context, ctrl catalog.Control, documentText string, now time.Time) ControlResult {
	verdicts := make([]EvidenceVerdict, len(ctrl.SubRequirements))

	// Plain errgroup as a bounded worker pool: workers never return errors,
	// failures are recorded in their verdict slot instead.
	g := new(errgroup.Group)
	g.SetLimit(s.maxParallel)
	for i, sub := range ctrl.SubRequirements {
		i, sub := i, sub
		g.Go(func() error {
			verdicts[i] = s.judgeSubRequirement(ctx, ctrl, sub, documentText, now)
			return nil
		})
	}
	_ = g.Wait()

	status, confidence, evidence := Aggregate(verdicts)
	s.metrics.IncrementControlOutcome(string(status))

	return ControlResult{
		ControlID:         ctrl.ID,
		ControlTitle:      ctrl.Title,
		OverallStatus:     status,
		OverallConfidence: confidence,
		OverallEvidence:   evidence,
		SubResults:        verdicts,
	}
}

func (s *Service) judgeSubRequirement(ctx context.Context, ctrl catalog.Control, sub catalog.SubRequirement, documentText string, now time.Time) EvidenceVerdict {
	prompt := BuildPrompt(sub, ctrl, documentText, now)

	start := time.Now()
	raw, err := s.judge.Complete(ctx, prompt)
	s.metrics.ObserveJudgeLatency(time.Since(start))

	var verdict EvidenceVerdict
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "judge call failed",
				"request_id", requestcontext.RequestID(ctx),
				"sub_requirement", sub.ID,
				"error", err,
			)
		}
		verdict = EvidenceVerdict{
			Status:     StatusError,
			Confidence: 0,
			Evidence:   fmt.Sprintf("judge call failed: %v", err),
		}
	} else {
		verdict = Normalize(raw)
	}

	verdict.SubRequirementID = sub.ID
	s.metrics.IncrementVerdict(string(verdict.Status))
	return verdict
}
