// Package client provides commands that call a running loot server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	lootv1 "github.com/KirkDiggler/rpg-loot/internal/handlers/loot/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running loot server",
	Long:  `Client commands make real gRPC requests against a loot server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(regenerateCmd)
	ClientCmd.AddCommand(applyCmd)
	ClientCmd.AddCommand(discardCmd)
	ClientCmd.AddCommand(settingsCmd)
}

// call connects, invokes method and prints the response
func call(cmd *cobra.Command, method string, req map[string]any) error {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	out, err := lootv1.NewLootServiceClient(conn).Call(ctx, method, in)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	data, err := json.MarshalIndent(out.AsMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// readJSON reads a JSON object from path, or stdin for "-"
func readJSON(cmd *cobra.Command, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = readAll(cmd)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}
