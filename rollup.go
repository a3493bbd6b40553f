// Package rollup compiles report-column aggregations into dialect-portable
// SQL fragments and formats the aggregated results back into per-row display
// values.
package rollup

import (
	"github.com/alexcesaro/statsd"
)

var ApplicationName = `rollup`
var ApplicationSummary = `a compiler and result formatter for tabular report column aggregations`
var ApplicationVersion = `0.9.2`

var stats, _ = statsd.New()
