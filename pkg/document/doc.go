// Package document assembles the wire document handed to the rendering
// surface.
//
// [Assemble] combines the wire form of the global chart options, the
// render-ordered series list and the optional annotations, tooltips, trades
// and sync configuration into
//
//	{
//	  "charts": [{
//	    "chartId": "chart-1",
//	    "chart": {...options, "leftPriceScale": {...}, "rightPriceScale": {...}},
//	    "series": [...],
//	    "annotations": [...],
//	    "chartGroupId": 0
//	  }],
//	  "syncConfig": {...}
//	}
//
// # Derived Values
//
// Before the chart section is emitted, [ComputeDataTimespan] measures the
// time covered by all series data and [FilterRangeSwitcher] drops display
// ranges longer than that span (with 10% slack). An unknown span disables
// filtering.
//
// Assemble works on plain mappings only. Building those mappings from typed
// charts is done by package chart.
package document
