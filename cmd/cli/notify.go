package cli

import (
	"Pantry-Backend/cmd/config"
	"Pantry-Backend/pkg/expiry"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Emails expiry reminders to every user who enabled them.",
	Long: `Emails expiry reminders to every user who enabled them. Users already
reminded today are skipped, so the command is safe to run from cron more than once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		today, err := dateFlag(cmd)
		if err != nil {
			return err
		}

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		sent, err := config.NewNotificationService(db).SendReminders(cmd.Context(), today)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminders for %s\n", sent, today)
		return nil
	},
}

func init() {
	notifyCmd.Flags().String("date", "", "treat this day (YYYY-MM-DD) as today")
	rootCmd.AddCommand(notifyCmd)
}

func dateFlag(cmd *cobra.Command) (expiry.Date, error) {
	value, _ := cmd.Flags().GetString("date")
	if value == "" {
		return expiry.Today(time.Now(), config.Location()), nil
	}
	return expiry.ParseDate(value)
}
