package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/errors"
	"github.com/tylerneylon/rss/pkg/feed"
)

// postCommand creates the post command, which writes a fresh item file
// in the current directory.
func (c *CLI) postCommand() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create a fresh " + feed.ItemsFilename + " in the current directory",
		Long: `Create a fresh ` + feed.ItemsFilename + ` here with one template item.

Run this from a new post's directory, then edit the title, link,
description, and author fields in the generated file (or pass --edit to
fill them in right away). Use the append command to add a post to a
directory that already has an item file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(feed.ItemsFilename); err == nil {
				return errors.New(errors.ErrCodeFileExists,
					"%s already exists; use the append command to add a post", feed.ItemsFilename)
			}

			item := feed.NewTemplateItem(time.Now(), c.Config.Author, c.Config.LinkPrefix)
			if edit {
				edited, ok, err := editItem(item)
				if err != nil {
					return err
				}
				if !ok {
					printWarning("Edit cancelled, keeping template values")
				} else {
					item = edited
				}
			}

			if err := feed.WriteItems(feed.ItemsFilename, []feed.Item{item}); err != nil {
				return err
			}
			printSuccess("Wrote template item file")
			printFile(feed.ItemsFilename)
			if !edit {
				printDetail("Edit the title, link, description, and author fields")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "fill in the item fields interactively")
	return cmd
}

// appendCommand creates the append command, which adds a template item
// to an existing item file.
func (c *CLI) appendCommand() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "append",
		Short: "Add a new item to an existing " + feed.ItemsFilename,
		Long: `Prepend a new template item to the ` + feed.ItemsFilename + ` in the current
directory. The file must already exist; use the post command to start
one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := feed.ReadItems(feed.ItemsFilename)
			if err != nil {
				return err
			}

			item := feed.NewTemplateItem(time.Now(), c.Config.Author, c.Config.LinkPrefix)
			if edit {
				edited, ok, err := editItem(item)
				if err != nil {
					return err
				}
				if !ok {
					printWarning("Edit cancelled, keeping template values")
				} else {
					item = edited
				}
			}

			// Newest item first, matching how the feed reads.
			items = append([]feed.Item{item}, items...)
			if err := feed.WriteItems(feed.ItemsFilename, items); err != nil {
				return err
			}
			printSuccess("Added an item (%d total)", len(items))
			printFile(feed.ItemsFilename)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "fill in the item fields interactively")
	return cmd
}
