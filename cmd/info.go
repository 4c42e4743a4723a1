package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stpsched/schedule"
	"stpsched/sheets"
)

var (
	infoDivision string
	infoRoster   string
	infoUploads  string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show which schedule file a lookup would use",
	Long: `Resolve the schedule file for a division and roster type and print its
path, size and modification time. Useful when a report looks stale: the
newest matching upload always wins.`,
	Example: `
  stpsched info --division НТП1
  stpsched info --division НЦК --type duties
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := schedule.ParseRosterType(infoRoster)
		if err != nil {
			return err
		}

		uploads, err := uploadsDir(infoUploads)
		if err != nil {
			return err
		}

		info, err := sheets.NewLocator(uploads).FileInfo(infoDivision, roster)
		if errors.Is(err, schedule.ErrFileNotFound) {
			fmt.Printf("Файл расписания для %s (%s) не найден в %s.\n", infoDivision, roster, uploads)
			return err
		}
		if err != nil {
			return err
		}

		fmt.Printf("Файл:     %s\n", info.Name)
		fmt.Printf("Путь:     %s\n", info.Path)
		fmt.Printf("Размер:   %d байт\n", info.Size)
		fmt.Printf("Изменён:  %s\n", info.Modified.Format("02.01.2006 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoDivision, "division", "d", "", "Division code (НТП1, НТП2, НЦК, ...)")
	infoCmd.Flags().StringVarP(&infoRoster, "type", "t", "regular", "Roster type: regular|duties|heads")
	infoCmd.Flags().StringVar(&infoUploads, "uploads", "", "Uploads directory override")

	_ = infoCmd.MarkFlagRequired("division")
}
