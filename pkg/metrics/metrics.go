// Package metrics holds shared metric settings.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NetworkBuckets are histogram buckets in seconds for remote dialogues such as
// SMTP probes and web searches, which routinely take several seconds.
var NetworkBuckets = []float64{.05, .1, .25, .5, 1, 2, 4, 8, 15, 30, 60} //nolint: gochecknoglobals

// Namespace prefixes every metric instrument name exported by the application.
const Namespace = "emailfinder"
