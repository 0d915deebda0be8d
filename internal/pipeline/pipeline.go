// Package pipeline orchestrates the end-to-end run: load inputs, derive
// daily features, assemble the dashboard datasets, write CSVs and mirror
// selected datasets to ClickHouse.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"tailwagg-analytics/internal/datasets"
	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/reporting"
	"tailwagg-analytics/internal/storage"
)

// Pipeline runs the batch transformation. It is single-threaded and
// all-in-memory: a fatal error before the write phase produces no output
// files at all, and nothing written in a previous run is rolled back.
type Pipeline struct {
	sales    storage.SalesStore
	calendar storage.CalendarStore
	brands   storage.ProductBrandStore
	sink     storage.DatasetSink

	cfg       domain.AnalysisConfig
	outputDir string
	logger    *zap.Logger
	clock     func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSink mirrors weekly product performance and the KPI dashboard into
// the given sink after the CSV files are written.
func WithSink(sink storage.DatasetSink) Option {
	return func(p *Pipeline) { p.sink = sink }
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) { p.clock = clock }
}

// New creates a Pipeline.
func New(
	sales storage.SalesStore,
	calendar storage.CalendarStore,
	brands storage.ProductBrandStore,
	cfg domain.AnalysisConfig,
	outputDir string,
	logger *zap.Logger,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		sales:     sales,
		calendar:  calendar,
		brands:    brands,
		cfg:       cfg,
		outputDir: outputDir,
		logger:    logger,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunResult summarizes a completed run.
type RunResult struct {
	Observations int
	FeaturedDays int
	Output       *datasets.Output
	Files        []string
	Duration     time.Duration
}

// Run executes the pipeline. Schema and empty-input violations abort
// before any file is written.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	start := p.clock()

	observations, err := p.sales.GetDailyMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily metrics: %w", err)
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("load daily metrics: %w", domain.ErrEmptyInput)
	}
	p.logger.Info("loaded daily metrics", zap.Int("rows", len(observations)))

	events, err := p.calendar.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load calendar events: %w", err)
	}
	brands, err := p.brands.GetProductBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product brands: %w", err)
	}
	p.logger.Info("loaded dimensions",
		zap.Int("calendar_events", len(events)),
		zap.Int("product_brands", len(brands)))

	days, err := features.BuildFeatures(observations, p.cfg)
	if err != nil {
		return nil, fmt.Errorf("build daily features: %w", err)
	}
	p.logger.Info("built daily features", zap.Int("rows", len(days)))

	assembler := datasets.NewAssembler(p.cfg)
	out, err := assembler.Assemble(datasets.Inputs{
		Days:   days,
		Events: events,
		Brands: brands,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble datasets: %w", err)
	}
	p.logger.Info("assembled datasets",
		zap.Int("weekly_product_rows", len(out.WeeklyProductPerformance)),
		zap.Int("reactivation_rows", len(out.ReactivationTracker)),
		zap.Int("kpi_rows", len(out.KPIDashboard)))

	files, err := reporting.WriteAll(p.outputDir, out)
	if err != nil {
		return nil, fmt.Errorf("write datasets: %w", err)
	}
	sort.Strings(files)
	p.logger.Info("wrote dataset files",
		zap.String("dir", p.outputDir),
		zap.Int("files", len(files)))

	if p.sink != nil {
		if err := p.sink.InsertWeeklyProductPerformance(ctx, out.WeeklyProductPerformance); err != nil {
			return nil, fmt.Errorf("mirror weekly product performance: %w", err)
		}
		if err := p.sink.InsertKPIDashboard(ctx, out.KPIDashboard); err != nil {
			return nil, fmt.Errorf("mirror kpi dashboard: %w", err)
		}
		p.logger.Info("mirrored datasets to sink")
	}

	return &RunResult{
		Observations: len(observations),
		FeaturedDays: len(days),
		Output:       out,
		Files:        files,
		Duration:     p.clock().Sub(start),
	}, nil
}

// IsFatalInput reports whether the error is an input contract violation
// (schema or empty input) rather than an infrastructure failure.
func IsFatalInput(err error) bool {
	return errors.Is(err, domain.ErrSchema) || errors.Is(err, domain.ErrEmptyInput)
}
