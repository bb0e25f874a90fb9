package hashtable_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	hashtable "github.com/samya-ak/hash-table"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Hasher     string             `json:"hasher"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Buckets    int                `json:"buckets"`
	LoadFactor float64            `json:"load_factor"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	GoVersion string             `json:"go_version"`
	GOARCH    string             `json:"goarch"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// newTable builds a table of the given prime size with the named hasher.
func newTable(size int, hasher string) (*hashtable.Table, error) {
	cfg := hashtable.DefaultConfig()
	cfg.Size = size
	cfg.Hasher = hasher
	return hashtable.New(cfg)
}

// recordTableStats copies the table's final slot usage into metrics.
func recordTableStats(metrics *BenchmarkMetrics, ht *hashtable.Table) {
	stats := ht.Stats()
	metrics.Buckets = stats.Size
	metrics.LoadFactor = stats.LoadFactor
	metrics.Metrics["tombstones"] = float64(stats.Tombstones)
}

// saveBenchmarkResult appends a benchmark result to benchmark_history/<resultsFile>
// in the repository root.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Tests run from bench/, the history lives one level up.
	benchmarkDir := filepath.Join(filepath.Dir(currentDir), "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		GOARCH:    runtime.GOARCH,
		Results:   []BenchmarkMetrics{metrics},
	}

	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existing BenchmarkSummary
		if err := json.Unmarshal(existingData, &existing); err == nil {
			summary.Results = append(existing.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
