// Package definition loads chart definitions from TOML or YAML files.
//
// A definition lists charts with their options, series data, trades,
// annotation layers and tooltips, plus an optional sync section:
//
//	[sync]
//	crosshair = true
//
//	[[charts]]
//	id = "btc"
//	[charts.options]
//	height = 500
//	rightPriceScale = { mode = 1 }
//
//	[[charts.series]]
//	type = "line"
//	data = [{ time = "2024-01-01", value = 42000.0 }]
//	options = { color = "#f7931a", lineWidth = 2 }
//
// Every option section goes through optdoc.Update: keys may be snake_case
// or camelCase, unknown keys are ignored and type mismatches are errors.
// Series data rows are converted with data.FromRecords, so a "columns"
// table can map point fields to differently named keys.
package definition
