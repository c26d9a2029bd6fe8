package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loot/internal/services/settings"
)

var sourcesOutput string

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Export or import the loot source selection",
}

var sourcesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the source selection and creature type overrides as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.settings.ExportSources(ctx)
		if err != nil {
			return fmt.Errorf("failed to export sources: %w", err)
		}

		if sourcesOutput == "" || sourcesOutput == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out.Data))
			return err
		}
		if err := os.WriteFile(sourcesOutput, out.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", sourcesOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sources and %d creature types to %s\n",
			len(out.Selection.Sources), len(out.Selection.CreatureTypes), sourcesOutput)
		return nil
	},
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a source selection from a JSON file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0]) // #nosec G304 -- path is supplied by the operator
		}
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.settings.ImportSources(ctx, &settings.ImportSourcesInput{Data: data})
		if err != nil {
			return fmt.Errorf("failed to import sources: %w", err)
		}

		for _, w := range out.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", w.Code, w.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sources and %d creature types, dropped %d\n",
			out.Imported, out.CreatureTypes, len(out.Dropped))
		return nil
	},
}

func init() {
	sourcesExportCmd.Flags().StringVarP(&sourcesOutput, "output", "o", "", "write to file instead of stdout")

	sourcesCmd.AddCommand(sourcesExportCmd)
	sourcesCmd.AddCommand(sourcesImportCmd)
}
