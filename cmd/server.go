package cmd

import (
	"coindash/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the CoinDash HTTP server",
	Long:  `Start the CoinDash HTTP server providing auth, preferences, votes and the aggregated data feeds`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
