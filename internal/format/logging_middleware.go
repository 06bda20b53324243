package format

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// Metrics provides observability data collection for contract applications.
// Supports counters and histograms with tag-based dimensionality.
type Metrics interface {
	IncrementCounter(name string, tags map[string]string, value float64)
	RecordHistogram(name string, tags map[string]string, value float64)
}

// NoOpMetrics satisfies the Metrics interface without collecting anything,
// for tests and callers that do not wire a metrics backend.
type NoOpMetrics struct{}

// NewNoOpMetrics creates a no-op metrics collector.
func NewNoOpMetrics() *NoOpMetrics { return &NoOpMetrics{} }

func (n *NoOpMetrics) IncrementCounter(_ string, _ map[string]string, _ float64) {}

func (n *NoOpMetrics) RecordHistogram(_ string, _ map[string]string, _ float64) {}

// LoggingMiddleware captures structured logs and metrics for the contract
// application lifecycle, with configurable redaction of payload content.
type LoggingMiddleware struct {
	logger        *slog.Logger
	metrics       Metrics
	redactContent bool
}

// NewLoggingMiddleware creates observability middleware with structured
// logging and metrics collection. Nil logger falls back to slog.Default;
// nil metrics falls back to NoOpMetrics.
func NewLoggingMiddleware(config ObservabilityConfig, logger *slog.Logger, metrics Metrics) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewNoOpMetrics()
	}

	lm := &LoggingMiddleware{
		logger:        logger,
		metrics:       metrics,
		redactContent: config.RedactContent,
	}
	return lm.Middleware
}

// Middleware wraps a handler with request/outcome logging, latency
// measurement, and counter emission.
func (m *LoggingMiddleware) Middleware(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, req *Request) (*Result, error) {
		traceID := req.TraceID
		if traceID == "" {
			traceID = uuid.New().String()
		}

		tags := map[string]string{"mode": requestMode(req)}

		m.logRequest(ctx, req, traceID)
		m.metrics.IncrementCounter("format.apply.total", tags, 1)

		start := time.Now()
		res, err := next.Handle(ctx, req)
		duration := time.Since(start)

		m.metrics.RecordHistogram("format.apply.duration_ms", tags, float64(duration.Milliseconds()))

		if err != nil {
			m.metrics.IncrementCounter("format.apply.failures", tags, 1)
			m.logFailure(ctx, err, traceID, duration)
		} else if res != nil {
			m.logSuccess(ctx, res, traceID, duration)
		}

		return res, err
	})
}

func requestMode(req *Request) string {
	if req.Contract == nil {
		return "passthrough"
	}
	return string(req.Contract.Mode)
}

func (m *LoggingMiddleware) logRequest(ctx context.Context, req *Request, traceID string) {
	attrs := []any{
		slog.String("trace_id", traceID),
		slog.String("mode", requestMode(req)),
		slog.Int("raw_text_len", len(req.RawText)),
	}
	if req.Contract != nil {
		attrs = append(attrs, slog.Int("expected_sections", req.Contract.ExpectedSections))
	}
	if !m.redactContent {
		attrs = append(attrs, slog.String("raw_text", req.RawText))
	}
	m.logger.DebugContext(ctx, "applying format contract", attrs...)
}

func (m *LoggingMiddleware) logSuccess(ctx context.Context, res *Result, traceID string, duration time.Duration) {
	m.logger.InfoContext(ctx, "format contract satisfied",
		slog.String("trace_id", traceID),
		slog.String("source", string(res.Source)),
		slog.Bool("contract_applied", res.ContractApplied),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

func (m *LoggingMiddleware) logFailure(ctx context.Context, err error, traceID string, duration time.Duration) {
	attrs := []any{
		slog.String("trace_id", traceID),
		slog.Int64("duration_ms", duration.Milliseconds()),
	}

	var ce *domain.ContractError
	if errors.As(err, &ce) {
		sources := make([]string, len(ce.AttemptedSources))
		for i, s := range ce.AttemptedSources {
			sources[i] = string(s)
		}
		attrs = append(attrs,
			slog.String("detail", string(ce.Detail)),
			slog.Any("attempted_sources", sources),
		)
	} else {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	m.logger.WarnContext(ctx, "format contract failed", attrs...)
}
