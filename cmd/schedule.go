package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stpsched/schedule"
	"stpsched/sheets"
)

var (
	scheduleName     string
	scheduleMonth    string
	scheduleDivision string
	scheduleRoster   string
	scheduleCompact  bool
	scheduleUploads  string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Render an employee's monthly schedule report",
	Long: `Render an employee's monthly schedule from the division's uploaded
spreadsheet.

The detailed report (default) lists every day with its category and paid
hours plus aggregate statistics; --compact groups contiguous days sharing
the same shift into date ranges.`,
	Example: `
  # Detailed report
  stpsched schedule --name "Иванов Иван Иванович" --month июнь --division НТП1

  # Compact report for the supervisors' roster
  stpsched schedule --name "Иванов Иван Иванович" --month june --division НЦК --type heads --compact
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := schedule.ParseRosterType(scheduleRoster)
		if err != nil {
			return err
		}

		uploads, err := uploadsDir(scheduleUploads)
		if err != nil {
			return err
		}

		service := sheets.NewService(uploads)
		report, err := service.FormattedSchedule(scheduleName, scheduleMonth, scheduleDivision, scheduleCompact, roster)
		if err != nil {
			fmt.Println(lookupErrorText(err, scheduleName, scheduleMonth, scheduleDivision))
			return err
		}

		fmt.Println(report)
		return nil
	},
}

// lookupErrorText maps the engine's typed failures to the user-facing
// messages the bot used to show. Each variant gets its own text; that is
// the whole point of keeping them distinguishable.
func lookupErrorText(err error, name, month, division string) string {
	switch {
	case errors.Is(err, schedule.ErrFileNotFound):
		return fmt.Sprintf("Файл расписания для %s не найден — график ещё не загружен.", division)
	case errors.Is(err, schedule.ErrParseFailure):
		return fmt.Sprintf("Файл расписания %s не удалось прочитать — проверьте загруженный файл.", division)
	case errors.Is(err, schedule.ErrMonthNotFound):
		return fmt.Sprintf("Месяц %q не найден в файле расписания %s.", month, division)
	case errors.Is(err, schedule.ErrUserNotFound):
		return fmt.Sprintf("Сотрудник %q не найден в расписании %s.", name, division)
	default:
		return fmt.Sprintf("Ошибка при получении расписания: %v", err)
	}
}

func uploadsDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Schedule.UploadsDir, nil
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleName, "name", "n", "", "Employee full name as written in the spreadsheet")
	scheduleCmd.Flags().StringVarP(&scheduleMonth, "month", "m", "", "Month (Russian or English name, any case)")
	scheduleCmd.Flags().StringVarP(&scheduleDivision, "division", "d", "", "Division code (НТП1, НТП2, НЦК, ...)")
	scheduleCmd.Flags().StringVarP(&scheduleRoster, "type", "t", "regular", "Roster type: regular|duties|heads")
	scheduleCmd.Flags().BoolVar(&scheduleCompact, "compact", false, "Compact date-range-grouped report")
	scheduleCmd.Flags().StringVar(&scheduleUploads, "uploads", "", "Uploads directory override")

	_ = scheduleCmd.MarkFlagRequired("name")
	_ = scheduleCmd.MarkFlagRequired("month")
	_ = scheduleCmd.MarkFlagRequired("division")
}
