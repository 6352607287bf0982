// Package timeouts defines shared timeout and latency constants.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Simulated latencies for form submissions that stand in for network calls.
const (
	SimulatedLogin      = 800 * time.Millisecond
	SimulatedFormSubmit = 1500 * time.Millisecond
	SimulatedQuickForm  = 1000 * time.Millisecond
)
