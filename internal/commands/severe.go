package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anivratgoel/carepal-id-bre/internal/bureau"
	"github.com/anivratgoel/carepal-id-bre/internal/classify"
	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

func newSevereCommand() *cobra.Command {
	var inputDir string
	var institution string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "severe",
		Short: "Extract derogatory remarks for one institution's accounts",
		Long: `Scans every report file, keeps only accounts held with the given
institution, and writes one CSV row per file that carries a derogatory
remark or a nonzero DPD on those accounts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSevere(inputDir, institution, outputPath)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "files", "directory containing report files")
	cmd.Flags().StringVar(&institution, "institution", "", "institution name (required)")
	_ = cmd.MarkFlagRequired("institution")
	cmd.Flags().StringVar(&outputPath, "output", "severe_status_results.csv", "output CSV path")

	return cmd
}

func runSevere(inputDir, institution, outputPath string) error {
	files, err := bureau.Scan(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no report files found in %s", inputDir)
	}

	matcher := classify.DefaultMatcher()
	var records [][]string

	for _, f := range files {
		reports, err := bureau.ParseFile(f.Path)
		if err != nil {
			fmt.Printf("warning: %v\n", err)
			continue
		}
		for _, rep := range reports {
			accounts := institutionAccounts(rep.Accounts, institution)
			if len(accounts) == 0 {
				continue
			}

			remark := severeRemark(accounts, matcher)
			maxDPD, latest := worstDPD(accounts)
			if remark == "" && maxDPD == 0 {
				continue
			}

			month := ""
			if !latest.IsZero() {
				month = latest.Format("2006-01")
			}
			records = append(records, []string{rep.FileName, remark, strconv.Itoa(maxDPD), month})
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	defer cw.Flush()

	if err := cw.Write([]string{"file_name", "most_severe_remark", "max_dpd", "latest_month"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := cw.Error(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d row(s) to %s\n", len(records), outputPath)
	return nil
}

func institutionAccounts(accounts []model.AccountRecord, institution string) []model.AccountRecord {
	var kept []model.AccountRecord
	for _, acc := range accounts {
		if strings.EqualFold(strings.TrimSpace(acc.Institution), strings.TrimSpace(institution)) {
			kept = append(kept, acc)
		}
	}
	return kept
}

func severeRemark(accounts []model.AccountRecord, m *classify.Matcher) string {
	texts := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		texts = append(texts, acc.Status)
		for _, e := range acc.DPDHistory {
			texts = append(texts, e.Remarks)
		}
	}
	return m.MostSevere(texts...)
}

// worstDPD returns the maximum DPD across the accounts' histories and the
// latest period it occurred in.
func worstDPD(accounts []model.AccountRecord) (int, time.Time) {
	maxDPD := 0
	var latest time.Time
	for _, acc := range accounts {
		for _, e := range acc.DPDHistory {
			if e.Period.IsZero() {
				continue
			}
			if e.DPD > maxDPD {
				maxDPD = e.DPD
				latest = e.Period
			} else if e.DPD == maxDPD && maxDPD > 0 && e.Period.After(latest) {
				latest = e.Period
			}
		}
	}
	return maxDPD, latest
}
