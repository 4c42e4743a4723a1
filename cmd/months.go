package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stpsched/schedule"
)

var monthsCurrent string

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List the month catalog or show navigation neighbors",
	Long: `List all months the engine accepts, or with --month show the
previous/next months used for report navigation. Navigation stops at the
year boundary: January has no previous month, December no next.`,
	Example: `
  stpsched months
  stpsched months --month июнь
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if monthsCurrent == "" {
			for _, month := range schedule.Months() {
				fmt.Println(month.Title())
			}
			return nil
		}

		month, ok := schedule.LookupMonth(monthsCurrent)
		if !ok {
			return fmt.Errorf("unknown month: %q", monthsCurrent)
		}

		prev, next := month.Prev(), month.Next()
		if prev != month {
			fmt.Printf("← %s\n", prev.Title())
		}
		fmt.Printf("• %s\n", month.Title())
		if next != month {
			fmt.Printf("→ %s\n", next.Title())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthsCmd)

	monthsCmd.Flags().StringVarP(&monthsCurrent, "month", "m", "", "Month to show neighbors for")
}
