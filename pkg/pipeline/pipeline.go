// Package pipeline provides the chart build pipeline for lwcharts.
//
// This package implements the complete load → build → assemble → publish
// pipeline shared by the CLI and library callers, so every entry point
// produces the same documents.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Decode a TOML or YAML chart definition
//  2. Build: Turn the definition into typed charts and a sync context
//  3. Assemble: Serialize every chart and combine them into one wire document
//  4. Publish: Hand the document to the rendering surfaces
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(st, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "charts.toml",
//	    Publish: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Payload))
//
// Run individual stages:
//
//	def, err := runner.Load(ctx, opts)
//	doc, charts, err := runner.Assemble(ctx, def, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/bridge"
	"github.com/matzehuels/lwcharts/pkg/chart"
	"github.com/matzehuels/lwcharts/pkg/definition"
	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/errors"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the build pipeline.
type Options struct {
	// Load options
	Source string            `json:"source,omitempty"` // Definition file path
	Format definition.Format `json:"format,omitempty"` // Overrides the file extension

	// Build options
	NoSync bool `json:"no_sync,omitempty"` // Drop the definition's sync section

	// Publish options
	Publish bool          `json:"publish,omitempty"` // Publish to the runner's store
	Refresh bool          `json:"refresh,omitempty"` // Publish even when the content is unchanged
	TTL     time.Duration `json:"ttl,omitempty"`
	Indent  bool          `json:"indent,omitempty"` // Indent JSON written to Output

	// Runtime options (not serialized)
	Definition *definition.Definition `json:"-"` // Used instead of Source when set
	Output     io.Writer              `json:"-"`
	Logger     *log.Logger            `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Charts are the built charts in definition order.
	Charts []*chart.Chart

	// Document is the combined wire document.
	Document document.Document

	// Payload is the JSON encoding of Document.
	Payload []byte

	// ContentKey addresses Payload in the store.
	ContentKey string

	// Response is the event reported by the store surface, if any.
	Response *bridge.Response

	// Stats contains timing and size information.
	Stats Stats

	// PublishInfo tracks what the publish stage did.
	PublishInfo PublishInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ChartCount   int
	SeriesCount  int
	Bytes        int
	LoadTime     time.Duration
	AssembleTime time.Duration
	PublishTime  time.Duration
}

// PublishInfo tracks the publish stage.
type PublishInfo struct {
	Published bool // Whether the document was written to the store
	Unchanged bool // Whether the store already held identical content
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if o.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "ttl must not be negative")
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a definition source is set and resolves its
// format.
func (o *Options) ValidateForLoad() error {
	if o.Definition == nil && o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source or definition is required")
	}
	if o.Definition == nil && o.Format == "" {
		format, err := definition.FormatFromPath(o.Source)
		if err != nil {
			return err
		}
		o.Format = format
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}
