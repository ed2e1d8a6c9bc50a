package perf

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/noticehub/noticehub/cmd/util"
	"github.com/noticehub/noticehub/lib/db"
	"github.com/noticehub/noticehub/lib/db/engines/birch"
	"github.com/noticehub/noticehub/lib/store/fstore"
	"github.com/noticehub/noticehub/lib/store/lstore"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// PerfCmd benchmarks the store operations the board is built on
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Benchmark the underlying store operations",
		Long:    "",
		RunE:    run,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix  = "__test"
	perfOps        = 10000
	perfValueSize  = 256
	perfKeySpread  = 100
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "ops"
	PerfCmd.Flags().Int(key, 10000, util.WrapString("Number of operations per benchmark"))
	key = "value-size"
	PerfCmd.Flags().Int(key, 256, util.WrapString("Size of the values in bytes"))
	key = "keys"
	PerfCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. set,persist)"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfOps = viper.GetInt("ops")
	perfValueSize = viper.GetInt("value-size")
	perfKeySpread = viper.GetInt("keys")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Benchmark of the NoticeHub store operations")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Ops:        %d\n", perfOps)
	fmt.Printf("Value size: %d bytes\n", perfValueSize)
	fmt.Printf("Keys:       %d\n", perfKeySpread)
	fmt.Println()

	value := make([]byte, perfValueSize)
	results := make(map[string]gometrics.Timer)

	// in-memory store: measures the raw engine cost
	mem := lstore.NewLocalStore(func() db.KVDB {
		return birch.NewBirchDB()
	})

	results["set"] = benchmark("set", func(t gometrics.Timer) {
		for i := 0; i < perfOps; i++ {
			k := getKey("set", i)
			start := time.Now()
			if err := mem.Set(k, value); err != nil {
				fmt.Printf("(set) - error setting key: %v\n", err)
			}
			t.UpdateSince(start)
		}
	})

	results["get"] = benchmark("get", func(t gometrics.Timer) {
		for i := 0; i < perfOps; i++ {
			k := getKey("set", i)
			start := time.Now()
			if _, _, err := mem.Get(k); err != nil {
				fmt.Printf("(get) - error getting key: %v\n", err)
			}
			t.UpdateSince(start)
		}
	})

	results["has"] = benchmark("has", func(t gometrics.Timer) {
		for i := 0; i < perfOps; i++ {
			k := getKey("set", i)
			start := time.Now()
			if _, err := mem.Has(k); err != nil {
				fmt.Printf("(has) - error checking key: %v\n", err)
			}
			t.UpdateSince(start)
		}
	})

	results["delete"] = benchmark("delete", func(t gometrics.Timer) {
		for i := 0; i < perfOps; i++ {
			k := getKey("set", i)
			start := time.Now()
			if err := mem.Delete(k); err != nil {
				fmt.Printf("(delete) - error deleting key: %v\n", err)
			}
			t.UpdateSince(start)
		}
	})

	// file-backed store: measures what a board write actually costs,
	// including the snapshot rewrite on every mutation
	persistOps := perfOps / 100
	if persistOps == 0 {
		persistOps = 1
	}

	results["persist"] = benchmark("persist", func(t gometrics.Timer) {
		dir, err := os.MkdirTemp("", "noticehub-perf")
		if err != nil {
			fmt.Printf("(persist) - error creating temp dir: %v\n", err)
			return
		}
		defer os.RemoveAll(dir)

		file, err := fstore.NewFileStore(filepath.Join(dir, "perf.db"), func() db.KVDB {
			return birch.NewBirchDB()
		})
		if err != nil {
			fmt.Printf("(persist) - error opening store: %v\n", err)
			return
		}

		for i := 0; i < persistOps; i++ {
			k := getKey("persist", i)
			start := time.Now()
			if err := file.Set(k, value); err != nil {
				fmt.Printf("(persist) - error setting key: %v\n", err)
			}
			t.UpdateSince(start)
		}
	})

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// getKey returns one of perfKeySpread keys for the given benchmark
func getKey(prefix string, i int) string {
	return fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i%perfKeySpread)
}

// benchmark runs fn against a fresh timer and prints the result
func benchmark(test string, fn func(t gometrics.Timer)) gometrics.Timer {
	t := gometrics.NewTimer()
	if !shouldSkip(test) {
		fn(t)
	}
	printResult(test, t)
	return t
}

// printResult prints the percentiles of a benchmark timer in a formatted way
func printResult(test string, t gometrics.Timer) {
	if t.Count() == 0 {
		fmt.Printf("%-10sskipped\n", test)
		return
	}

	opsPerSec := 1e9 / t.Mean()
	fmt.Printf("%-10s%-14s p50=%-12s p99=%-12s %.0f ops/sec\n",
		test,
		time.Duration(int64(t.Mean())).String(),
		time.Duration(int64(t.Percentile(0.5))).String(),
		time.Duration(int64(t.Percentile(0.99))).String(),
		opsPerSec,
	)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]gometrics.Timer) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "Count", "MeanNs", "P50Ns", "P99Ns", "OpsPerSec",
		"ValueSizeBytes", "KeyCount",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for test, t := range results {
		var opsPerSec float64
		if t.Count() > 0 {
			opsPerSec = 1e9 / t.Mean()
		}
		row := []string{
			test,
			strconv.FormatInt(t.Count(), 10),
			strconv.FormatFloat(t.Mean(), 'f', 0, 64),
			strconv.FormatFloat(t.Percentile(0.5), 'f', 0, 64),
			strconv.FormatFloat(t.Percentile(0.99), 'f', 0, 64),
			strconv.FormatFloat(opsPerSec, 'f', 0, 64),
			strconv.Itoa(perfValueSize),
			strconv.Itoa(perfKeySpread),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %v", err)
		}
	}

	return nil
}
