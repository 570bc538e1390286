package cli

import (
	"Pantry-Backend/internal/utils"
	"context"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Food inventory backend with expiry tracking.",
	Long: `pantry serves the food inventory API, runs database migrations and sends
expiry reminder emails.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", utils.DefaultConfigPath, "config file")
}

func initConfig() {
	if err := utils.LoadConfig(cfgFile); err != nil {
		log.Warnf("config file %s not loaded, using environment only: %v", cfgFile, err)
	}
}
