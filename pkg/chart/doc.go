// Package chart holds the series manager and the chart aggregate root.
//
// # Series Manager
//
// [Manager] keeps series in insertion order and serializes them in render
// order:
//
//   - [Manager.GroupByPane] groups serialized series by pane id and stably
//     sorts each pane by ascending z-index
//   - [Manager.Flatten] concatenates the panes in ascending pane id order
//
// Within a pane, lower z-indexes draw first and ties keep insertion order.
// Across panes only the pane id matters.
//
// Adding a series on a price scale the chart does not define logs a warning
// and still adds it. A series that fails to serialize is logged and placed
// in pane 0 at z-index 0 rather than dropped.
//
// # Price and Volume
//
// [Manager.AddPriceVolumePair] derives a price series and a volume histogram
// from one OHLCV table, reserving the bottom of the pane for volume bars on
// a "volume" overlay scale.
//
// # Charts
//
// [Chart] ties options, series, annotations, tooltips and trades together
// and produces the wire document through package document:
//
//	c := chart.New(options.Default(), logger)
//	c.Add(series.NewLine(points...))
//	doc, err := c.Document(nil)
package chart
