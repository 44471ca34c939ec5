package cmd

import "github.com/spf13/cobra"

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the WebSocket and REST servers",
		RunE:  runServe,
	}

	rootCmd.AddCommand(serveCmd)
}
