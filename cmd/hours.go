package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stpsched/salary"
	"stpsched/schedule"
	"stpsched/sheets"
	"stpsched/storage"
)

var (
	hoursName     string
	hoursMonth    string
	hoursDivision string
	hoursRoster   string
	hoursYear     int
	hoursUploads  string
	hoursDBPath   string
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Split a month's worked hours into salary pay classes",
	Long: `Split an employee's worked hours into the four pay classes consumed by
the salary calculation: regular, night (22:00-06:00), holiday and
night-holiday hours.

Holidays come from the local holiday calendar (see "stpsched holidays").
A day missing from the calendar counts as a regular day.`,
	Example: `
  stpsched hours --name "Иванов Иван Иванович" --month июнь --division НТП1 --year 2026
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := schedule.ParseRosterType(hoursRoster)
		if err != nil {
			return err
		}

		month, ok := schedule.LookupMonth(hoursMonth)
		if !ok {
			return fmt.Errorf("unknown month: %q", hoursMonth)
		}

		year := hoursYear
		if year == 0 {
			year = time.Now().Year()
		}

		uploads, err := uploadsDir(hoursUploads)
		if err != nil {
			return err
		}

		calendar, err := openCalendar(hoursDBPath)
		if err != nil {
			return err
		}
		defer calendar.Close()

		service := sheets.NewService(uploads)
		days, err := service.ClassifiedSchedule(hoursName, hoursMonth, hoursDivision, roster)
		if err != nil {
			fmt.Println(lookupErrorText(err, hoursName, hoursMonth, hoursDivision))
			return err
		}

		breakdowns := salary.Breakdown(days, year, month, calendar)
		if len(breakdowns) == 0 {
			fmt.Printf("Нет рабочих дней у %s за %s.\n", schedule.ShortName(hoursName), month.Title())
			return nil
		}

		fmt.Printf("Часы • %s %d • %s\n\n", month.Title(), year, schedule.ShortName(hoursName))
		fmt.Printf("%-10s %8s %8s %8s %8s\n", "День", "Дневные", "Ночные", "Празд.", "Н-празд.")
		for _, b := range breakdowns {
			fmt.Printf("%-10s %8.1f %8.1f %8.1f %8.1f\n", b.Day, b.Regular, b.Night, b.Holiday, b.NightHoliday)
		}

		totals := salary.Sum(breakdowns)
		fmt.Printf("\n%-10s %8.1f %8.1f %8.1f %8.1f\n", "Итого", totals.Regular, totals.Night, totals.Holiday, totals.NightHoliday)
		return nil
	},
}

func openCalendar(override string) (*storage.HolidayStore, error) {
	path := override
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Schedule.HolidaysDB
	}
	return storage.OpenHolidays(path)
}

func init() {
	rootCmd.AddCommand(hoursCmd)

	hoursCmd.Flags().StringVarP(&hoursName, "name", "n", "", "Employee full name as written in the spreadsheet")
	hoursCmd.Flags().StringVarP(&hoursMonth, "month", "m", "", "Month (Russian or English name, any case)")
	hoursCmd.Flags().StringVarP(&hoursDivision, "division", "d", "", "Division code (НТП1, НТП2, НЦК, ...)")
	hoursCmd.Flags().StringVarP(&hoursRoster, "type", "t", "regular", "Roster type: regular|duties|heads")
	hoursCmd.Flags().IntVarP(&hoursYear, "year", "y", 0, "Calendar year (default: current year)")
	hoursCmd.Flags().StringVar(&hoursUploads, "uploads", "", "Uploads directory override")
	hoursCmd.Flags().StringVar(&hoursDBPath, "db", "", "Holiday calendar database override")

	_ = hoursCmd.MarkFlagRequired("name")
	_ = hoursCmd.MarkFlagRequired("month")
	_ = hoursCmd.MarkFlagRequired("division")
}
