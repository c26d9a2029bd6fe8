// Package main is the entry point for the loot server and its tooling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/cmd/server/client"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "rpg-loot",
	Short: "RPG loot generation server",
	Long: `rpg-loot generates loot for tokens from packs, folders and roll tables,
previews it and hands it to actor inventories.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file to load before the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
