package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/anivratgoel/carepal-id-bre/internal/bureau"
	"github.com/anivratgoel/carepal-id-bre/internal/config"
	"github.com/anivratgoel/carepal-id-bre/internal/engine"
	"github.com/anivratgoel/carepal-id-bre/internal/logging"
	"github.com/anivratgoel/carepal-id-bre/internal/model"
	"github.com/anivratgoel/carepal-id-bre/internal/report"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var cutoffFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every report file in the input directory",
		Long: `Scans the configured input directory, evaluates each bureau report
independently through the rule pipeline, and writes the results CSV, the
cutoff-filtered CSV, and the results JSON. The exit status reflects parse
failures only; APPROVE and REJECT are both successful evaluations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cutoff time.Time
			if cutoffFlag != "" {
				d, err := time.Parse("2006-01-02", cutoffFlag)
				if err != nil {
					return fmt.Errorf("parsing --cutoff %q: %w", cutoffFlag, err)
				}
				cutoff = d
			}
			return runBatch(configPath, cutoff)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bre.yaml", "configuration file")
	cmd.Flags().StringVar(&cutoffFlag, "cutoff", "", "restrict the filtered CSV to reports as of this date (YYYY-MM-DD)")

	return cmd
}

func runBatch(configPath string, cutoff time.Time) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.Logging)

	// Policy misconfiguration is fatal before any file is touched.
	eng, err := engine.New(cfg.Policy)
	if err != nil {
		return err
	}

	files, err := bureau.Scan(cfg.Input.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No report files found in %s\n", cfg.Input.Dir)
		return nil
	}

	runStart := time.Now().UTC()

	var rows, snapshotRows []report.Row
	approved, rejected, failed := 0, 0, 0

	for _, f := range files {
		reports, err := bureau.ParseFile(f.Path)
		if err != nil {
			// An unreadable file is an operational fault, not a REJECT;
			// the remaining files still get evaluated.
			log.Error("parse failed", "file", f.Name, "error", err)
			failed++
			continue
		}

		for _, rep := range reports {
			asOf := rep.AsOf
			if asOf.IsZero() {
				asOf = runStart
			}

			result := eng.Evaluate(rep, asOf)
			rows = append(rows, report.Row{Result: result, AsOf: asOf})

			// The secondary view evaluates the report as of its own cutoff
			// date when the source file carries one.
			snapResult := result
			snapAsOf := asOf
			if rep.HasCutoff() {
				snap := rep.Snapshot(rep.Cutoff)
				snapAsOf = rep.Cutoff
				snapResult = eng.Evaluate(snap, snapAsOf)
			}
			snapshotRows = append(snapshotRows, report.Row{Result: snapResult, AsOf: snapAsOf})

			switch result.Status {
			case model.StatusApprove:
				approved++
				log.Info("evaluated", "file", f.Name, "status", result.Status,
					"limit", result.SanctionLimit.StringFixed(0))
			default:
				rejected++
				log.Info("evaluated", "file", f.Name, "status", result.Status,
					"reason", result.RejectReason)
			}
		}
	}

	if err := writeOutputs(cfg.Output, rows, snapshotRows, cutoff); err != nil {
		return err
	}

	fmt.Printf("Evaluated %d report(s): %d APPROVE, %d REJECT, %d failed\n",
		approved+rejected, approved, rejected, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to evaluate", failed, len(files))
	}
	return nil
}

func writeOutputs(out config.OutputConfig, rows, snapshotRows []report.Row, cutoff time.Time) error {
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if err := writeFile(filepath.Join(out.Dir, out.ResultsCSV), func(f *os.File) error {
		return report.WriteCSV(f, rows)
	}); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(out.Dir, out.FilteredCSV), func(f *os.File) error {
		if cutoff.IsZero() {
			return report.WriteCSV(f, snapshotRows)
		}
		return report.WriteFilteredCSV(f, snapshotRows, cutoff)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(out.Dir, out.ResultsJSON), func(f *os.File) error {
		return report.WriteJSON(f, rows)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
