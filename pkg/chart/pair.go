package chart

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/options"
	"github.com/matzehuels/lwcharts/pkg/series"
)

// VolumeScaleID is the overlay scale created for volume histograms.
const VolumeScaleID = "volume"

// Default volume bar colors.
const (
	DefaultVolumeUpColor   = "rgba(38,166,154,0.5)"
	DefaultVolumeDownColor = "rgba(239,83,80,0.5)"
)

// Scale margins reserving the bottom of the pane for volume bars.
const (
	priceMarginTop     = 0.10
	priceMarginBottom  = 0.25
	volumeMarginTop    = 0.80
	volumeMarginBottom = 0.0
)

// PairOptions customizes AddPriceVolumePair. Zero values select defaults.
type PairOptions struct {
	UpColor   string
	DownColor string
	// PriceScaleID is the scale of the price series. Nil selects "right";
	// a pointer to "" selects the overlay scale.
	PriceScaleID *string
}

func (o *PairOptions) setDefaults() {
	if o.UpColor == "" {
		o.UpColor = DefaultVolumeUpColor
	}
	if o.DownColor == "" {
		o.DownColor = DefaultVolumeDownColor
	}
	if o.PriceScaleID == nil {
		o.PriceScaleID = options.Ptr(options.ScaleRight)
	}
}

// AddPriceVolumePair derives a price series of kind and a volume histogram
// from one OHLCV dataset and adds both to pane paneID.
//
// rows are tabular records and mapping maps point fields (time, open, high,
// low, close, volume) to column names; both must be non-empty. The price
// scale's margins are set to 0.10/0.25 and a "volume" overlay scale with
// margins 0.80/0.0 is registered. Each volume bar is colored up when its
// close is at or above its open, down otherwise.
func (m *Manager) AddPriceVolumePair(rows []map[string]any, mapping map[string]string, kind series.Kind, paneID int, opts PairOptions) (*Manager, error) {
	if len(rows) == 0 {
		return m, errors.New(errors.ErrCodeInvalidInput, "price/volume data cannot be empty")
	}
	if len(mapping) == 0 {
		return m, errors.New(errors.ErrCodeInvalidInput, "price/volume column mapping cannot be empty")
	}
	if err := errors.ValidatePaneID(paneID); err != nil {
		return m, err
	}
	opts.setDefaults()

	bars, err := data.FromRecords(func() *data.OhlcvData { return &data.OhlcvData{} }, rows, mapping)
	if err != nil {
		return m, err
	}

	price := series.New(kind, pricePoints(kind, bars)...)
	price.PaneID = paneID
	price.SetScale(*opts.PriceScaleID)

	volumes := make([]*data.HistogramData, len(bars))
	for i, b := range bars {
		color := opts.DownColor
		if b.Bullish() {
			color = opts.UpColor
		}
		volumes[i] = &data.HistogramData{Time: b.Time, Value: b.Volume, Color: color}
	}
	volume := series.NewHistogram(volumes...)
	volume.PaneID = paneID
	volume.SetScale(VolumeScaleID)
	volume.PriceFormat = &options.PriceFormat{Type: options.Ptr(options.PriceFormatVolume)}
	volume.LastValueVisible = false
	volume.PriceLineVisible = false

	m.priceScale(*opts.PriceScaleID).ScaleMargins = options.Margins(priceMarginTop, priceMarginBottom)
	m.opts.AddOverlayScale(VolumeScaleID, options.OverlayScale(VolumeScaleID, volumeMarginTop, volumeMarginBottom))

	if _, err := m.Add(price); err != nil {
		return m, err
	}
	return m.Add(volume)
}

// priceScale returns the options of scale id, creating them when missing.
func (m *Manager) priceScale(id string) *options.PriceScaleOptions {
	switch id {
	case options.ScaleLeft:
		if m.opts.LeftPriceScale == nil {
			m.opts.LeftPriceScale = options.NewPriceScale(id)
		}
		return m.opts.LeftPriceScale
	case options.ScaleRight:
		if m.opts.RightPriceScale == nil {
			m.opts.RightPriceScale = options.NewPriceScale(id)
		}
		return m.opts.RightPriceScale
	}
	if s, ok := m.opts.OverlayPriceScales[id]; ok && s != nil {
		return s
	}
	s := options.NewPriceScale(id)
	m.opts.AddOverlayScale(id, s)
	return s
}

func pricePoints(kind series.Kind, bars []*data.OhlcvData) []data.Point {
	out := make([]data.Point, len(bars))
	for i, b := range bars {
		switch kind {
		case series.Candlestick, series.Bar:
			ohlc := b.OhlcData
			out[i] = &ohlc
		case series.Area:
			out[i] = &data.AreaData{Time: b.Time, Value: b.Close}
		case series.Baseline:
			out[i] = &data.BaselineData{Time: b.Time, Value: b.Close}
		case series.Histogram:
			out[i] = &data.HistogramData{Time: b.Time, Value: b.Close}
		default:
			out[i] = &data.LineData{Time: b.Time, Value: b.Close}
		}
	}
	return out
}
