package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsCreated       = "magic_items_created_total"
	MetricNameItemsDeleted       = "magic_items_deleted_total"
	MetricNameItemsUpdated       = "magic_items_updated_total"
	MetricNameStockAdjustments   = "magic_items_stock_adjustments_total"
	MetricNameStockUnitsAdjusted = "magic_items_stock_units_adjusted_total"
	MetricNameSearchesPerformed  = "magic_items_searches_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsCreated       = "Total number of magic items created"
	HelpTextItemsDeleted       = "Total number of magic items deleted"
	HelpTextItemsUpdated       = "Total number of magic item updates applied"
	HelpTextStockAdjustments   = "Total number of stock adjustments"
	HelpTextStockUnitsAdjusted = "Total stock units moved by adjustments"
	HelpTextSearchesPerformed  = "Total number of item searches performed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelDirection = "direction"
)

// PathUnmatched labels requests that no route matched
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
