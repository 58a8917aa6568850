package cli

import (
	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/feed"
)

// imgCommand creates the img command, which prepares item descriptions
// for carrying an image.
func (c *CLI) imgCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "img [items-file]",
		Short: "Wrap item descriptions in CDATA blocks with an img tag",
		Long: `Wrap the description of every item in the given file (default
` + feed.ItemsFilename + `) in a CDATA block and add an empty img tag. Edit the
IMG_SRC placeholder afterward to point at the image. Descriptions that
already contain a CDATA block are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := feed.ItemsFilename
			if len(args) == 1 {
				path = args[0]
			}

			items, err := feed.ReadItems(path)
			if err != nil {
				return err
			}

			changed := feed.WrapImages(items)
			if changed == 0 {
				printInfo("Nothing to do; all descriptions already carry CDATA blocks")
				return nil
			}
			if err := feed.WriteItems(path, items); err != nil {
				return err
			}
			printSuccess("Wrapped %d description(s)", changed)
			printFile(path)
			printDetail("Replace IMG_SRC with the image URL")
			return nil
		},
	}
}
