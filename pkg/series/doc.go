// Package series defines the configuration of drawable chart entities.
//
// A [Series] carries its kind tag, its data points, the pane and price scale
// it draws on, a z-index, common visibility options and a per-kind style
// document. Its wire form is
//
//	{
//	  "type": "line",
//	  "data": [{"time": 1704153600, "value": 1.5}, ...],
//	  "paneId": 0,
//	  "options": {"visible": true, "priceScaleId": "right", "zIndex": 100, ...style},
//	  "priceLines": [...],
//	  "markers": [...],
//	  "legend": {...}
//	}
//
// The last three keys appear only when set.
//
// # Price Scales
//
// An unset price scale id is sent as "right". The empty id is a distinct,
// valid overlay id and is sent as "".
//
// # Updates
//
// [Series.Update] applies a forgiving patch to the series and its style
// document together, so {"color": "red", "zIndex": 5} changes both.
package series
