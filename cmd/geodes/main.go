// Command geodes executes an HCL run manifest: it scores each declared
// blueprint descriptor, prints a result table with per-run timing, and
// exits non-zero when any expected answer mismatched.
//
// Usage:
//
//	geodes -manifest runs.hcl [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/geodes/runner"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		manifestPath = flag.String("manifest", "runs.hcl", "path to the HCL run manifest")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	runs, err := runner.LoadManifest(*manifestPath)
	if err != nil {
		log.Error("manifest load failed", "path", *manifestPath, "error", err)

		return 1
	}

	outcomes, err := runner.NewExecutor(log).Execute(context.Background(), runs)
	if err != nil {
		log.Error("execution failed", "error", err)

		return 1
	}

	fmt.Printf("%-20s %12s %12s  %s\n", "run", "answer", "time", "status")
	failed := false
	for _, o := range outcomes {
		status := "ok"
		if !o.OK {
			status = fmt.Sprintf("err: expected %d", *o.Expected)
			failed = true
		}
		fmt.Printf("%-20s %12d %12s  %s\n", o.Name, o.Answer, o.Elapsed.Round(time.Microsecond), status)
	}

	if failed {
		return 1
	}

	return 0
}
