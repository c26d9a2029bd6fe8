package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	lootv1 "github.com/KirkDiggler/rpg-loot/internal/handlers/loot/v1"
)

var (
	tokenName         string
	tokenActor        string
	tokenActorType    string
	tokenCreatureType string
	tokenCR           float64
)

var generateCmd = &cobra.Command{
	Use:   "generate [token-id...]",
	Short: "Generate loot for one or more tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := make([]any, 0, len(args))
		for _, id := range args {
			token := map[string]any{
				"id":            id,
				"name":          tokenName,
				"actor_id":      tokenActor,
				"actor_type":    tokenActorType,
				"creature_type": tokenCreatureType,
			}
			if cmd.Flags().Changed("cr") {
				token["challenge_rating"] = tokenCR
			}
			tokens = append(tokens, token)
		}
		return call(cmd, lootv1.MethodGenerateLoot, map[string]any{"tokens": tokens})
	},
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate [session-id] [token-id]",
	Short: "Re-roll one token of a preview session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, lootv1.MethodRegenerateLoot, map[string]any{
			"session_id": args[0],
			"token_id":   args[1],
		})
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply [session-id]",
	Short: "Apply a preview session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, lootv1.MethodApplyLoot, map[string]any{"session_id": args[0]})
	},
}

var discardCmd = &cobra.Command{
	Use:   "discard [session-id]",
	Short: "Discard a preview session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, lootv1.MethodDiscardLoot, map[string]any{"session_id": args[0]})
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the world loot settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, lootv1.MethodGetWorldSettings, map[string]any{})
	},
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update [file]",
	Short: "Replace the world loot settings from a JSON file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readJSON(cmd, args[0])
		if err != nil {
			return err
		}
		return call(cmd, lootv1.MethodUpdateWorldSettings, map[string]any{"settings": body})
	},
}

func init() {
	generateCmd.Flags().StringVar(&tokenName, "name", "", "token name")
	generateCmd.Flags().StringVar(&tokenActor, "actor", "", "actor id that receives applied loot")
	generateCmd.Flags().StringVar(&tokenActorType, "actor-type", "npc", "actor type")
	generateCmd.Flags().StringVar(&tokenCreatureType, "creature-type", "", "creature type (default humanoid)")
	generateCmd.Flags().Float64Var(&tokenCR, "cr", 0, "challenge rating")

	settingsCmd.AddCommand(settingsUpdateCmd)
}

func readAll(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
