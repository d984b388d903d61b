package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anivratgoel/carepal-id-bre/internal/bureau"
)

func newSearchCommand() *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "List institutions matching a keyword across all report files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(inputDir, args[0])
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "files", "directory containing report files")

	return cmd
}

func runSearch(inputDir, keyword string) error {
	files, err := bureau.Scan(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no report files found in %s", inputDir)
	}

	needle := strings.ToLower(keyword)
	found := make(map[string]bool)

	for _, f := range files {
		reports, err := bureau.ParseFile(f.Path)
		if err != nil {
			fmt.Printf("warning: %v\n", err)
			continue
		}
		for _, rep := range reports {
			for _, acc := range rep.Accounts {
				if acc.Institution == "" {
					continue
				}
				if strings.Contains(strings.ToLower(acc.Institution), needle) {
					if !found[acc.Institution] {
						fmt.Printf("Found in %s: %s\n", f.Name, acc.Institution)
					}
					found[acc.Institution] = true
				}
			}
		}
	}

	if len(found) == 0 {
		fmt.Println("No matching institutions found.")
		return nil
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n%d matching institution(s):\n", len(names))
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
