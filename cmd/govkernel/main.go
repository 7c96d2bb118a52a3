// Command govkernel is a demonstration host process for the governance
// kernel: it loads configuration, logs with log/slog, and runs the eight
// literal scenarios spec.md §8 names end to end against the pure core,
// printing each verdict. It does not construct the archive, store, or
// telemetry adapters under internal/. It performs I/O; it is explicitly
// not part of the pure core.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/northwood-systems/govkernel/internal/config"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the command's testable entrypoint: it never calls os.Exit
// itself, returning a process exit code instead.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		return runScenarios(stdout, stderr)
	}

	switch args[1] {
	case "run", "scenarios":
		return runScenarios(stdout, stderr)
	case "version":
		_, _ = fmt.Fprintln(stdout, "govkernel demo host")
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\nUsage: govkernel [run|version]\n", args[1])
		return 2
	}
}

func runScenarios(stdout, stderr io.Writer) int {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{}))
	logger.Info("starting govkernel demo host", "profile", cfg.ActiveProfile, "shadow_mode", cfg.ShadowMode)

	results := RunScenarios()

	failures := 0
	for _, r := range results {
		status := "PASS"
		if !r.OK {
			status = "FAIL"
			failures++
		}
		_, _ = fmt.Fprintf(stdout, "[%s] %s: got=%s want=%s — %s\n", status, r.Name, r.Got, r.Want, r.Detail)
	}

	if failures > 0 {
		logger.Error("scenario verification failed", "failures", failures)
		return 1
	}
	logger.Info("all scenarios verified", "count", len(results))
	return 0
}
