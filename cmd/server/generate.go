package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/assignment"
)

var (
	generateWorld  string
	generateTokens []string
	generateApply  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate loot for the tokens of a world file",
	Long: `Generate loot for tokens placed in a YAML world file and print the results.
With --apply the results are handed to the token actors and the resulting
inventories are printed.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateWorld, "world", "", "YAML world file (overrides WORLD_FILE)")
	generateCmd.Flags().StringSliceVar(&generateTokens, "token", nil, "token ids to generate for (default all tokens)")
	generateCmd.Flags().BoolVar(&generateApply, "apply", false, "apply the generated loot to the actors")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateWorld != "" {
		cfg.WorldFile = generateWorld
	}
	if cfg.WorldFile == "" {
		return fmt.Errorf("a world file is required (--world or WORLD_FILE)")
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	tokens, err := selectTokens(a.world.Tokens(), generateTokens)
	if err != nil {
		return err
	}

	out, err := a.loot.GenerateLoot(ctx, &assignment.GenerateLootInput{Tokens: tokens})
	if err != nil {
		return fmt.Errorf("failed to generate loot: %w", err)
	}

	for _, result := range out.Results {
		slog.Info("Loot generated",
			"token", result.TokenName,
			"summary", result.Summary(),
			"warnings", len(result.Warnings))
	}

	report := map[string]any{
		"session_id": out.SessionID,
		"applied":    out.Applied,
		"results":    out.Results,
	}

	if generateApply && out.SessionID != "" {
		applied, err := a.loot.ApplyLoot(ctx, &assignment.ApplyLootInput{SessionID: out.SessionID})
		if err != nil {
			return fmt.Errorf("failed to apply loot: %w", err)
		}
		report["applied"] = true
		report["skipped"] = applied.Skipped
	}

	if generateApply || out.Applied {
		actors := make(map[string]any)
		for _, token := range tokens {
			if actor, ok := a.world.Actor(token.ActorID); ok {
				actors[actor.ID] = actor
			}
		}
		report["actors"] = actors
	}

	return printJSON(cmd, report)
}

// selectTokens returns the tokens named by ids, in ids order, or all tokens
func selectTokens(all []*loot.Token, ids []string) ([]*loot.Token, error) {
	if len(ids) == 0 {
		if len(all) == 0 {
			return nil, fmt.Errorf("the world has no tokens")
		}
		return all, nil
	}

	byID := make(map[string]*loot.Token, len(all))
	for _, token := range all {
		byID[token.ID] = token
	}

	selected := make([]*loot.Token, 0, len(ids))
	for _, id := range ids {
		token, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("token %s is not in the world", id)
		}
		selected = append(selected, token)
	}
	return selected, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
