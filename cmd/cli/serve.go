package cli

import (
	"Pantry-Backend/cmd/config"
	"Pantry-Backend/internal/utils"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		app, err := config.NewApp(db)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = utils.GetConfig("APP_PORT")
		}
		return app.Listen(":" + port)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default APP_PORT)")
	rootCmd.AddCommand(serveCmd)
}
