package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// =============================================================================
// Integer-coded enums
// =============================================================================

// LineStyle selects the dash pattern of a line.
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDotted
	LineStyleDashed
	LineStyleLargeDashed
	LineStyleSparseDotted
)

func (s LineStyle) EnumValue() any { return int(s) }

func (s *LineStyle) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(s, v, func(x LineStyle) bool { return x >= LineStyleSolid && x <= LineStyleSparseDotted })
}

// LineType selects how consecutive points are joined.
type LineType int

const (
	LineTypeSimple LineType = iota
	LineTypeWithSteps
	LineTypeCurved
)

func (t LineType) EnumValue() any { return int(t) }

func (t *LineType) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(t, v, func(x LineType) bool { return x >= LineTypeSimple && x <= LineTypeCurved })
}

// CrosshairMode controls crosshair snapping.
type CrosshairMode int

const (
	CrosshairNormal CrosshairMode = iota
	CrosshairMagnet
	CrosshairHidden
)

func (m CrosshairMode) EnumValue() any { return int(m) }

func (m *CrosshairMode) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(m, v, func(x CrosshairMode) bool { return x >= CrosshairNormal && x <= CrosshairHidden })
}

// PriceScaleMode selects the scale transform.
type PriceScaleMode int

const (
	PriceScaleNormal PriceScaleMode = iota
	PriceScaleLogarithmic
	PriceScalePercentage
	PriceScaleIndexedTo100
)

func (m PriceScaleMode) EnumValue() any { return int(m) }

func (m *PriceScaleMode) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(m, v, func(x PriceScaleMode) bool { return x >= PriceScaleNormal && x <= PriceScaleIndexedTo100 })
}

// PriceLineSource selects which bar the last-price line tracks.
type PriceLineSource int

const (
	PriceLineSourceLastBar PriceLineSource = iota
	PriceLineSourceLastVisible
)

func (s PriceLineSource) EnumValue() any { return int(s) }

func (s *PriceLineSource) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(s, v, func(x PriceLineSource) bool { return x == PriceLineSourceLastBar || x == PriceLineSourceLastVisible })
}

// LastPriceAnimationMode controls the pulsing last-price marker.
type LastPriceAnimationMode int

const (
	LastPriceAnimationDisabled LastPriceAnimationMode = iota
	LastPriceAnimationContinuous
	LastPriceAnimationOnDataUpdate
)

func (m LastPriceAnimationMode) EnumValue() any { return int(m) }

func (m *LastPriceAnimationMode) ParseValue(v any) bool {
	return optdoc.ParseIntEnum(m, v, func(x LastPriceAnimationMode) bool {
		return x >= LastPriceAnimationDisabled && x <= LastPriceAnimationOnDataUpdate
	})
}

// =============================================================================
// String-coded enums
// =============================================================================

// ColorType distinguishes solid and gradient backgrounds.
type ColorType string

const (
	ColorSolid            ColorType = "solid"
	ColorVerticalGradient ColorType = "gradient"
)

func (c ColorType) EnumValue() any { return string(c) }

func (c *ColorType) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(c, v, func(x ColorType) bool { return x == ColorSolid || x == ColorVerticalGradient })
}

// Corner is a legend or overlay anchor position.
type Corner string

const (
	TopLeft     Corner = "top-left"
	TopRight    Corner = "top-right"
	BottomLeft  Corner = "bottom-left"
	BottomRight Corner = "bottom-right"
)

func (c Corner) EnumValue() any { return string(c) }

func (c *Corner) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(c, v, func(x Corner) bool {
		switch x {
		case TopLeft, TopRight, BottomLeft, BottomRight:
			return true
		}
		return false
	})
}

// MarkerPosition places a series marker relative to its bar.
type MarkerPosition string

const (
	MarkerAboveBar MarkerPosition = "aboveBar"
	MarkerBelowBar MarkerPosition = "belowBar"
	MarkerInBar    MarkerPosition = "inBar"
)

func (p MarkerPosition) EnumValue() any { return string(p) }

func (p *MarkerPosition) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(p, v, func(x MarkerPosition) bool {
		return x == MarkerAboveBar || x == MarkerBelowBar || x == MarkerInBar
	})
}

// MarkerShape is the glyph drawn for a series marker.
type MarkerShape string

const (
	MarkerCircle    MarkerShape = "circle"
	MarkerSquare    MarkerShape = "square"
	MarkerArrowUp   MarkerShape = "arrowUp"
	MarkerArrowDown MarkerShape = "arrowDown"
)

func (s MarkerShape) EnumValue() any { return string(s) }

func (s *MarkerShape) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(s, v, func(x MarkerShape) bool {
		switch x {
		case MarkerCircle, MarkerSquare, MarkerArrowUp, MarkerArrowDown:
			return true
		}
		return false
	})
}

// PriceFormatType selects how prices are printed.
type PriceFormatType string

const (
	PriceFormatPrice   PriceFormatType = "price"
	PriceFormatVolume  PriceFormatType = "volume"
	PriceFormatPercent PriceFormatType = "percent"
)

func (t PriceFormatType) EnumValue() any { return string(t) }

func (t *PriceFormatType) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(t, v, func(x PriceFormatType) bool {
		return x == PriceFormatPrice || x == PriceFormatVolume || x == PriceFormatPercent
	})
}

// TradeVisualization selects how trades are drawn.
type TradeVisualization string

const (
	TradeMarkers    TradeVisualization = "markers"
	TradeRectangles TradeVisualization = "rectangles"
	TradeBoth       TradeVisualization = "both"
	TradeLines      TradeVisualization = "lines"
	TradeArrows     TradeVisualization = "arrows"
	TradeZones      TradeVisualization = "zones"
)

func (t TradeVisualization) EnumValue() any { return string(t) }

func (t *TradeVisualization) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(t, v, func(x TradeVisualization) bool {
		switch x {
		case TradeMarkers, TradeRectangles, TradeBoth, TradeLines, TradeArrows, TradeZones:
			return true
		}
		return false
	})
}

// =============================================================================
// Time ranges
// =============================================================================

// TimeRange is a display range length in seconds.
type TimeRange int64

// Common display ranges.
const (
	RangeDay      TimeRange = 86400
	RangeWeek     TimeRange = 7 * RangeDay
	RangeMonth    TimeRange = 30 * RangeDay
	RangeQuarter  TimeRange = 90 * RangeDay
	RangeHalfYear TimeRange = 180 * RangeDay
	RangeYear     TimeRange = 365 * RangeDay
	RangeFiveYear TimeRange = 5 * RangeYear
)

func (r TimeRange) EnumValue() any { return int64(r) }

func (r *TimeRange) ParseValue(v any) bool {
	n, ok := optdoc.ToInt(v)
	if !ok || n <= 0 {
		return false
	}
	*r = TimeRange(n)
	return true
}

// Seconds returns the range length as a float.
func (r TimeRange) Seconds() float64 { return float64(r) }
