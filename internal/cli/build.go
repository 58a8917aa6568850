package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/feed"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path (default rss.xml under the tree root)
	dryRun bool   // print the document instead of writing it
	force  bool   // write even when validation reports problems
}

// buildCommand creates the build command, which assembles the feed
// document from the publishing tree.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Assemble the publishing tree into an rss.xml document",
		Long: `Walk the tree rooted at dir (default "."), collect every ` + feed.ItemsFilename + `
file, read the ` + feed.RootFilename + ` channel metadata at the root, and write
the assembled feed document.

The build refuses to run when validation finds problems, so a template
item never leaks into the published feed. Use --force to override, or
--dry-run to inspect the document on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runBuild(dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default rss.xml under the tree root)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the document to stdout instead of writing it")
	cmd.Flags().BoolVar(&opts.force, "force", false, "build even when validation reports problems")

	return cmd
}

// runBuild validates the tree, assembles the document, and writes it.
func (c *CLI) runBuild(dir string, opts buildOpts) error {
	prog := newProgress(c.Logger)

	reports, err := c.checkTree(dir)
	if err != nil {
		return err
	}
	problems := 0
	for _, r := range reports {
		problems += len(r.Problems)
	}
	if problems > 0 {
		printReports(reports)
		if !opts.force {
			return fmt.Errorf("%d validation problem(s); fix them or pass --force", problems)
		}
		printWarning("Building anyway (--force)")
	}

	ch, err := feed.ReadChannel(filepath.Join(dir, feed.RootFilename))
	if err != nil {
		return err
	}
	sources, err := feed.Collect(dir)
	if err != nil {
		return err
	}

	doc, err := feed.Render(ch, sources, time.Now())
	if err != nil {
		return err
	}

	itemCount := 0
	for _, src := range sources {
		itemCount += len(src.Items)
	}
	c.Logger.Debugf("Assembled %d items from %d files", itemCount, len(sources))

	if opts.dryRun {
		fmt.Print(doc)
		return nil
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(dir, feed.FeedFilename)
	}
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Built feed with %d items", itemCount))
	printSuccess("Wrote feed document")
	printFile(output)
	return nil
}
