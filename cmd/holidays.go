package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stpsched/storage"
)

var (
	holidaysDBPath string
	holidaysYear   int
)

const holidayDateLayout = "2006-01-02"

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Maintain the holiday calendar used by the hours split",
	Long: `Maintain the local holiday calendar. Days stored here are paid as
holiday (and night-holiday) hours by "stpsched hours"; everything else
counts as a regular day.`,
	Example: `
  stpsched holidays add 2026-01-01 "Новый год"
  stpsched holidays list --year 2026
  stpsched holidays remove 2026-01-01
`,
}

var holidaysAddCmd = &cobra.Command{
	Use:   "add <date> [name]",
	Short: "Add a holiday (date as YYYY-MM-DD)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.ParseInLocation(holidayDateLayout, args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", args[0], err)
		}
		name := ""
		if len(args) == 2 {
			name = args[1]
		}

		store, err := openCalendar(holidaysDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Add(date, name); err != nil {
			return err
		}
		fmt.Printf("Added holiday %s\n", args[0])
		return nil
	},
}

var holidaysRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Remove a holiday (date as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.ParseInLocation(holidayDateLayout, args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", args[0], err)
		}

		store, err := openCalendar(holidaysDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Remove(date); err != nil {
			if errors.Is(err, storage.ErrHolidayNotFound) {
				fmt.Printf("No holiday stored for %s\n", args[0])
			}
			return err
		}
		fmt.Printf("Removed holiday %s\n", args[0])
		return nil
	},
}

var holidaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored holidays for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		year := holidaysYear
		if year == 0 {
			year = time.Now().Year()
		}

		store, err := openCalendar(holidaysDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		holidays, err := store.List(year)
		if err != nil {
			return err
		}
		if len(holidays) == 0 {
			fmt.Printf("No holidays stored for %d\n", year)
			return nil
		}

		for _, holiday := range holidays {
			if holiday.Name != "" {
				fmt.Printf("%s  %s\n", holiday.Date.Format(holidayDateLayout), holiday.Name)
			} else {
				fmt.Println(holiday.Date.Format(holidayDateLayout))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
	holidaysCmd.AddCommand(holidaysAddCmd)
	holidaysCmd.AddCommand(holidaysRemoveCmd)
	holidaysCmd.AddCommand(holidaysListCmd)

	holidaysCmd.PersistentFlags().StringVar(&holidaysDBPath, "db", "", "Holiday calendar database override")
	holidaysListCmd.Flags().IntVarP(&holidaysYear, "year", "y", 0, "Year to list (default: current year)")
}
