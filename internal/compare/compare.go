// Package compare orchestrates a full comparison run: scan collection A,
// scan collection B, match, report.
package compare

import (
	"runtime"

	"github.com/jaywantadh/papermatch/config"
	"github.com/jaywantadh/papermatch/internal/matcher"
	"github.com/jaywantadh/papermatch/internal/report"
	"github.com/jaywantadh/papermatch/internal/scanner"
	"github.com/jaywantadh/papermatch/pkg/logging"
)

// Run executes the two-phase comparison described by cfg. The title index
// for folder A is fully built before folder B is scanned, so the matcher
// only ever reads immutable indexes. Per-document failures are handled
// inside the scanner; only configuration errors surface here.
func Run(cfg *config.CompareConfig) (*report.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Log.WithField("folder", cfg.FolderA).Info("extracting titles from folder A")
	indexA, err := scanner.Scan(cfg.FolderA, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	logging.Log.WithField("documents", len(indexA)).Info("folder A indexed")

	logging.Log.WithField("folder", cfg.FolderB).Info("extracting titles from folder B")
	indexB, err := scanner.Scan(cfg.FolderB, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	logging.Log.WithField("documents", len(indexB)).Info("folder B indexed")

	matches := matcher.Match(indexA, indexB, cfg.Threshold, poolSize(cfg.ParallelismRatio))
	logging.Log.WithField("pairs", len(matches)).Info("comparison finished")

	return report.New(cfg.FolderA, cfg.FolderB, cfg.Threshold, matches), nil
}

// poolSize derives the comparison worker count from the configured
// parallelism ratio; a ratio <= 0 keeps the run sequential.
func poolSize(ratio int) int {
	if ratio <= 0 {
		return 1
	}
	n := runtime.NumCPU() / ratio
	if n < 1 {
		n = 1
	}
	return n
}
