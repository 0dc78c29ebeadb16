// Package pkg provides the core libraries for lwcharts.
//
// # Overview
//
// lwcharts turns typed chart configuration (global options, series, trades,
// annotations, tooltips and sync groups) into the JSON wire document read by a
// lightweight-charts rendering surface. Option structs declare their fields in
// snake_case; the wire document uses camelCase keys throughout.
//
// # Architecture
//
// The typical data flow:
//
//	TOML/YAML definition
//	         ↓
//	    [definition] package (decode + build typed charts)
//	         ↓
//	    [chart] package (series manager, render order)
//	         ↓
//	    [document] package (assemble wire document)
//	         ↓
//	    [bridge] package (hand to a rendering surface)
//
// [pipeline] runs those stages end to end for the CLI.
//
// # Quick Start
//
//	c := chart.New(options.Default(), logger)
//	c.Add(series.NewLine(points...))
//	doc, _ := c.Document(document.NewSync())
//	payload, _ := doc.JSON()
//
// # Main Packages
//
// ## Serialization Core
//
// [casing] - snake_case and camelCase conversion of identifiers and keys.
//
// [optdoc] - Option documents: AsDict serializes declared fields, Update
// merges loosely-typed patches back in.
//
// ## Domain Types
//
// [options], [data], [series], [trade], [annotation] and [tooltip] hold the
// option documents of each part of a chart.
//
// ## Assembly
//
// [chart] - Series manager and the chart aggregate root.
//
// [document] - Wire document assembly, range switcher filtering and sync
// configuration.
//
// ## Infrastructure
//
// [store] - Document store backends (memory, file, Redis, MongoDB).
//
// [bridge] - Explicit bridge context between the assembler and a rendering
// surface.
//
// [observability] - Hooks for pipeline, store and bridge events.
//
// [errors] - Structured errors with codes.
//
// [casing]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/casing
// [optdoc]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/optdoc
// [options]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/options
// [data]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/data
// [series]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/series
// [trade]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/trade
// [annotation]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/annotation
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/tooltip
// [chart]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/chart
// [document]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/document
// [definition]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/definition
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/pipeline
// [store]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/store
// [bridge]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/bridge
// [observability]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/lwcharts/pkg/errors
package pkg
