// Package main is the entry point for the tactics game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vadim010975/retro-tactics/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "retro-tactics",
	Short: "Retro tactics game server",
	Long:  `Retro tactics hosts turn-based tactical battles on a square board over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
