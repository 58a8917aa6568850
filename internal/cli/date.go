package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/sevendate"
)

// dateCommand creates the date command, the CLI surface of the base-7
// date notation.
func (c *CLI) dateCommand() *cobra.Command {
	var (
		digital bool
		today   bool
	)

	cmd := &cobra.Command{
		Use:   "date [value]",
		Short: "Convert between base-7 notation and calendar dates",
		Long: `Convert a date to or from the base-7 day-of-year notation.

A value in the notation ("132.2024" or "2024-0132") converts to a
calendar date. A calendar date in ISO form ("2024-03-14") converts to
the notation. With --today, today's date is encoded instead.

Examples:
  rss date 0.2024        # -> 2024-01-01
  rss date 2024-0100     # -> 2024-02-19
  rss date 2024-03-14    # -> 133.2024
  rss date --today --digital`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("digital") {
				digital = c.Config.DigitalDates
			}

			if today {
				d := sevendate.FromTime(time.Now())
				printKeyValue("today", d.Format(digital))
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("pass a date value or --today")
			}
			return runDate(args[0], digital)
		},
	}

	cmd.Flags().BoolVarP(&digital, "digital", "d", false, "use the zero-padded digital form when encoding")
	cmd.Flags().BoolVar(&today, "today", false, "encode today's date")

	return cmd
}

// isoFormat is the calendar-date layout accepted and printed alongside
// the base-7 notation.
const isoFormat = "2006-01-02"

// runDate converts value in whichever direction applies. ISO calendar
// dates encode to the notation; anything else decodes from it.
func runDate(value string, digital bool) error {
	if t, err := time.ParseInLocation(isoFormat, value, time.Local); err == nil {
		d := sevendate.FromTime(t)
		printKeyValue("encoded", d.Format(digital))
		printKeyValue("day", fmt.Sprintf("%d of %d", d.DayOfYear, d.Year))
		return nil
	}

	d, err := sevendate.Parse(value)
	if err != nil {
		return err
	}
	printKeyValue("date", d.Time().Format(isoFormat))
	printKeyValue("day", fmt.Sprintf("%d of %d", d.DayOfYear, d.Year))
	return nil
}
