package cmd

import (
	"fmt"
	"log"
	"os"

	"coindash/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coindash_server",
	Short: "CoinDash is a personal crypto dashboard service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting CoinDash server...")
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
