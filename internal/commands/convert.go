package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anivratgoel/carepal-id-bre/internal/report"
)

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <results.json> <output.csv>",
		Short: "Convert a results JSON file to CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1])
		},
	}

	return cmd
}

func runConvert(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	entries, err := report.ReadJSON(in)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := report.WriteEntriesCSV(out, entries); err != nil {
		return err
	}

	fmt.Printf("Converted %d entries to %s\n", len(entries), outputPath)
	return nil
}
