package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/feed"
)

// checkCommand creates the check command, which validates the tree
// without building anything.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate item and root files in the publishing tree",
		Long: `Validate every ` + feed.ItemsFilename + ` under dir (default ".") plus the
` + feed.RootFilename + ` at the root: JSON shape, required fields, link and
email formats, pubDate parseability, and leftover template values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			reports, err := c.checkTree(dir)
			if err != nil {
				return err
			}
			printReports(reports)

			problems := 0
			for _, r := range reports {
				problems += len(r.Problems)
			}
			if problems > 0 {
				return fmt.Errorf("%d validation problem(s) in %d file(s)", problems, len(reports))
			}
			printSuccess("All %d files look good", len(reports))
			return nil
		},
	}
}

// checkTree validates the root file and every item file under dir.
func (c *CLI) checkTree(dir string) ([]feed.Report, error) {
	var reports []feed.Report

	rootPath := filepath.Join(dir, feed.RootFilename)
	if _, err := os.Stat(rootPath); err == nil {
		reports = append(reports, feed.CheckChannelFile(rootPath))
	} else {
		reports = append(reports, feed.Report{
			Path:     rootPath,
			Problems: []string{"missing; the feed root needs channel metadata"},
		})
	}

	sources, err := feed.Collect(dir)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		reports = append(reports, feed.CheckItemsFile(src.Path))
	}

	c.Logger.Debugf("Checked %d files under %s", len(reports), dir)
	return reports, nil
}

// printReports renders per-file validation results.
func printReports(reports []feed.Report) {
	for _, r := range reports {
		if r.OK() {
			continue
		}
		printError("%s", r.Path)
		for _, p := range r.Problems {
			printDetail("%s", p)
		}
	}
}
