/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tasknest/apiserver/config"
	"github.com/tasknest/apiserver/internal/server"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Starts the unauthenticated in-memory task API",
	Long: `Starts the unauthenticated in-memory task API. All tasks live in
process memory and belong to no user; the store is cleared on exit.
Usage:

	apiserver demo
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()
		logger := newLogger(cfg.LogLevel)

		srv := server.NewDemo(cfg, logger)
		if err := srv.Start(); err != nil {
			logger.Errorf("server error: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
