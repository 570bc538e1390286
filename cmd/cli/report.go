package cli

import (
	"Pantry-Backend/cmd/config"
	"Pantry-Backend/domain"
	"Pantry-Backend/pkg/food"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints a user's expiry statistics and calendar.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		month, _ := cmd.Flags().GetString("month")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		// Reports never touch images, so no object storage is wired.
		foodService := food.NewFoodService(food.NewFoodRepository(db), nil, config.Location())

		stats, err := foodService.GetDashboardStats(cmd.Context(), userID)
		if err != nil {
			return err
		}
		calendar, err := foodService.GetCalendar(cmd.Context(), userID, month)
		if err != nil {
			return err
		}

		return writeReport(cmd.OutOrStdout(), stats, calendar)
	},
}

func init() {
	reportCmd.Flags().StringP("user", "u", "", "user ID")
	reportCmd.Flags().StringP("month", "m", "", "month as YYYY-MM (default current month)")
	rootCmd.AddCommand(reportCmd)
}

func writeReport(out io.Writer, stats domain.DashboardStatsResponse, calendar domain.CalendarResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "LEVEL\tITEMS\t")
	fmt.Fprintf(w, "critical\t%d\t\n", stats.Critical)
	fmt.Fprintf(w, "warning\t%d\t\n", stats.Warning)
	fmt.Fprintf(w, "soon\t%d\t\n", stats.Soon)
	fmt.Fprintf(w, "safe\t%d\t\n", stats.Safe)
	fmt.Fprintf(w, "no expiry\t%d\t\n", stats.NoExpiry)
	fmt.Fprintf(w, "TOTAL\t%d\t\n", stats.Total)
	fmt.Fprintf(w, "critical %%\t%.1f\t\n", stats.CriticalPercentage)
	fmt.Fprintf(w, "warning %%\t%.1f\t\n", stats.WarningPercentage)
	fmt.Fprintln(w, " \t \t")

	fmt.Fprintf(w, "%s\t \t \t\n", calendar.Month)
	if len(calendar.Days) == 0 {
		fmt.Fprintln(w, "nothing expires this month\t \t \t")
	}
	for _, day := range calendar.Days {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", day.Date, day.DominantLevel, day.AccessibilityLabel)
	}

	return w.Flush()
}
