package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/bridge"
	"github.com/matzehuels/lwcharts/pkg/chart"
	"github.com/matzehuels/lwcharts/pkg/definition"
	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/observability"
	"github.com/matzehuels/lwcharts/pkg/store"
)

// Runner encapsulates pipeline execution against a document store.
//
// The Runner is stateless except for the store and logger - it doesn't
// keep pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Store  store.Store
	Keyer  store.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given store and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If st is nil, a NullStore is used (publishing disabled).
func NewRunner(st store.Store, keyer store.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = store.NewDefaultKeyer()
	}
	if st == nil {
		st = store.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  st,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → assemble → publish pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	def, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded definition",
		"source", sourceName(opts),
		"charts", len(def.Charts),
		"duration", result.Stats.LoadTime)

	// Stages 2 and 3: Build and assemble
	assembleStart := time.Now()
	doc, charts, err := r.Assemble(ctx, def, opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	payload, err := doc.JSON()
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Charts = charts
	result.Document = doc
	result.Payload = payload
	result.ContentKey = r.Keyer.ContentKey(payload)
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.Stats.ChartCount = len(charts)
	result.Stats.SeriesCount = seriesCount(charts)
	result.Stats.Bytes = len(payload)

	r.Logger.Info("assembled document",
		"charts", result.Stats.ChartCount,
		"series", result.Stats.SeriesCount,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.AssembleTime)

	// Stage 4: Publish
	publishStart := time.Now()
	if err := r.Publish(ctx, result, opts); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	result.Stats.PublishTime = time.Since(publishStart)

	return result, nil
}

// Load decodes the definition named by opts.
func (r *Runner) Load(ctx context.Context, opts Options) (def *definition.Definition, err error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Definition != nil {
		return opts.Definition, nil
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source)
	start := time.Now()
	defer func() {
		n := 0
		if def != nil {
			n = len(def.Charts)
		}
		hooks.OnLoadComplete(ctx, opts.Source, n, time.Since(start), err)
	}()

	return definition.LoadAs(opts.Source, opts.Format)
}

// Assemble builds the charts of def and combines their documents.
func (r *Runner) Assemble(ctx context.Context, def *definition.Definition, opts Options) (doc document.Document, charts []*chart.Chart, err error) {
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnAssembleStart(ctx, len(def.Charts))
	start := time.Now()
	defer func() {
		hooks.OnAssembleComplete(ctx, seriesCount(charts), time.Since(start), err)
	}()

	charts, sync, err := def.Build(opts.Logger)
	if err != nil {
		return nil, nil, err
	}
	if opts.NoSync {
		sync = nil
	}

	docs := make([]document.Document, 0, len(charts))
	for _, c := range charts {
		d, err := c.Document(sync)
		if err != nil {
			return nil, nil, fmt.Errorf("chart %s: %w", c.ID, err)
		}
		opts.Logger.Debug("assembled chart", "chart", c.ID, "series", c.Series.Len(), "group", c.GroupID)
		docs = append(docs, d)
	}
	doc, err = document.Combine(docs...)
	if err != nil {
		return nil, nil, err
	}
	return doc, charts, nil
}

// Publish writes the document to opts.Output and, with opts.Publish, to the
// runner's store. A store that already holds identical content is skipped
// unless opts.Refresh is set.
func (r *Runner) Publish(ctx context.Context, result *Result, opts Options) error {
	r.applyLogger(&opts)

	if opts.Output != nil {
		if err := r.dispatch(ctx, nonClosing{bridge.NewWriterSurface(opts.Output, opts.Indent)}, result, opts); err != nil {
			return err
		}
	}
	if !opts.Publish {
		return nil
	}

	if !opts.Refresh {
		if _, hit, err := r.Store.Get(ctx, result.ContentKey); err == nil && hit {
			observability.Store().OnStoreHit(ctx, "content")
			result.PublishInfo.Unchanged = true
			r.Logger.Info("document unchanged, skipping publish", "key", result.ContentKey)
			return nil
		}
		observability.Store().OnStoreMiss(ctx, "content")
	}

	surface := bridge.NewStoreSurface(r.Store, r.Keyer, opts.TTL, opts.Logger)
	if err := r.dispatch(ctx, nonClosing{surface}, result, opts); err != nil {
		return err
	}
	if err := r.Store.Set(ctx, result.ContentKey, result.Payload, opts.TTL); err != nil {
		return err
	}
	observability.Store().OnStoreSet(ctx, "content", len(result.Payload))
	result.PublishInfo.Published = true

	r.Logger.Info("published document",
		"charts", result.Stats.ChartCount,
		"key", result.ContentKey)
	return nil
}

// dispatch hands the document to surface through a short-lived bridge
// context and records a store surface's response.
func (r *Runner) dispatch(ctx context.Context, surface bridge.Surface, result *Result, opts Options) (err error) {
	hooks := observability.Pipeline()
	hooks.OnPublishStart(ctx, surface.Name())
	start := time.Now()
	defer func() {
		hooks.OnPublishComplete(ctx, surface.Name(), len(result.Payload), time.Since(start), err)
	}()

	bc, err := bridge.Init(surface, opts.Logger)
	if err != nil {
		return err
	}
	defer bc.Close()

	resp, err := bc.Dispatch(ctx, result.Document)
	if err != nil {
		return err
	}
	if resp != nil {
		result.Response = resp
		r.Logger.Info("surface responded", "type", resp.Type, "chart", resp.ChartID)
		return resp.Err()
	}
	return nil
}

// Close closes the store.
func (r *Runner) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// nonClosing keeps a per-run bridge context from closing resources the
// caller owns: the runner's store and opts.Output.
type nonClosing struct{ bridge.Surface }

func (nonClosing) Close() error { return nil }

func seriesCount(charts []*chart.Chart) int {
	n := 0
	for _, c := range charts {
		n += c.Series.Len()
	}
	return n
}

func sourceName(opts Options) string {
	if opts.Definition != nil && opts.Source == "" {
		return "<memory>"
	}
	return opts.Source
}
