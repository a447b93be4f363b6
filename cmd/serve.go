package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnhub/learnhub/internal/logger"
	"github.com/learnhub/learnhub/internal/relay"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API relay server",
	Long: "Starts the HTTP relay that forwards lesson and chat requests to the " +
		"Anthropic API. The relay holds the API key so clients never embed one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		log, err := logger.New(os.Getenv("LEARNHUB_LOG_MODE"))
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		server := relay.New(relay.Config{
			Addr:   addr,
			Logger: log,
		})
		return server.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "Listen address")
}
