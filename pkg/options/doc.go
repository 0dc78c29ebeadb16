// Package options defines the concrete option documents and enumerations of a
// chart: global chart options, price and time scales, layout, crosshair,
// grid, the range switcher, per-kind series styles and trade visualization.
//
// Every type here is an [optdoc.Document]. Optional fields are pointers so
// that an explicit false or zero is emitted while an unset field is omitted:
//
//	opts := options.Default()
//	opts.RightPriceScale.ScaleMargins = options.Margins(0.1, 0.25)
//	opts.AddOverlayScale("volume", options.OverlayScale("volume", 0.8, 0))
//	wire, err := optdoc.AsDict(opts)
//
// # Enumerations
//
// Integer-coded enums ([LineStyle], [LineType], [CrosshairMode],
// [PriceScaleMode], [PriceLineSource], [LastPriceAnimationMode]) serialize to
// their integer code. String-coded enums ([ColorType], [Corner],
// [MarkerPosition], [MarkerShape], [PriceFormatType], [TradeVisualization])
// serialize to their string code. Both accept their primitive code through
// [optdoc.Update], and reject unknown codes with an INVALID_TYPE error.
//
// # Price Scales
//
// The ids "left", "right" and "" always exist. Any other id used by a series
// should be registered with [ChartOptions.AddOverlayScale].
package options
