package config

import (
	"flag"
	"fmt"
	"os"
)

// parses CLI flags for the benchmark binary
func ParseBenchmarkFlags() (BenchmarkFlags, error) {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
	model := fs.String("model", "", "filter models by name substring")
	benchType := fs.String("type", "all", "benchmark type to run: finder, segmentation or all")
	all := fs.Bool("all", false, "run all configured models")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	switch *benchType {
	case "finder", "segmentation", "all":
	default:
		return BenchmarkFlags{}, fmt.Errorf("invalid -type %q: must be finder, segmentation or all", *benchType)
	}

	return BenchmarkFlags{Model: *model, Type: *benchType, All: *all}, nil
}
