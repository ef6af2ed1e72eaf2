// Package docbench provides lightweight timing measurements for
// extraction runs, with no dependency beyond the standard library's
// time package — matching the zero-dependency benchmarking this
// repository's timing harness was grounded on.
package docbench

import (
	"fmt"
	"time"
)

// Result is the outcome of a single benchmark run.
type Result struct {
	Name       string
	TotalTime  time.Duration
	Iterations int
	AvgTime    time.Duration
	OpsPerSec  float64
}

// Summary formats the result as a one-line human-readable string.
func (r Result) Summary() string {
	avgUs := r.AvgTime.Seconds() * 1_000_000.0
	totalMs := r.TotalTime.Seconds() * 1_000.0
	return fmt.Sprintf(
		"%s: %.2f µs/op (%.0f ops/sec, %d iters, %.2fms total)",
		r.Name, avgUs, r.OpsPerSec, r.Iterations, totalMs,
	)
}

// Bench runs f iterations times (after a fixed warm-up) and measures
// the elapsed wall-clock time.
func Bench(name string, iterations int, f func()) Result {
	for i := 0; i < 5; i++ {
		f()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		f()
	}
	totalTime := time.Since(start)

	avgTime := totalTime / time.Duration(iterations)
	opsPerSec := float64(iterations) / totalTime.Seconds()

	return Result{
		Name:       name,
		TotalTime:  totalTime,
		Iterations: iterations,
		AvgTime:    avgTime,
		OpsPerSec:  opsPerSec,
	}
}

// BenchThroughput runs f like Bench but reports bytes/second rather
// than a Result, given a fixed per-iteration byte count.
func BenchThroughput(name string, iterations, bytesPerIter int, f func()) string {
	result := Bench(name, iterations, f)

	totalBytes := iterations * bytesPerIter
	bytesPerSec := float64(totalBytes) / result.TotalTime.Seconds()
	mbPerSec := bytesPerSec / (1024.0 * 1024.0)

	return fmt.Sprintf(
		"%s: %.2f MB/s (%d iterations, %d bytes each)",
		name, mbPerSec, iterations, bytesPerIter,
	)
}

// Suite accumulates Bench results for a final combined report.
type Suite struct {
	results []Result
}

// NewSuite creates an empty benchmark suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Add runs a benchmark and appends its Result to the suite.
func (s *Suite) Add(name string, iterations int, f func()) {
	s.results = append(s.results, Bench(name, iterations, f))
}

// Results returns every result recorded so far.
func (s *Suite) Results() []Result {
	return s.results
}

// Report prints every recorded result's summary to stdout.
func (s *Suite) Report() {
	fmt.Print("\n=== Benchmark Results ===\n\n")
	for _, result := range s.results {
		fmt.Println(result.Summary())
	}
	fmt.Println()
}
