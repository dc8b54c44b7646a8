package main

import (
	"context"
	"encoding/json"
	"myblog/internal/config"
	"myblog/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCommand constructs the 'fetch' subcommand that resolves the link preview
// of a single URL and prints it, which is handy to debug extraction.
func fetchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Resolves and prints the metadata of a URL",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			meta := newResolver(ctx, cfg).Resolve(ctx, args[0])

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(meta); err != nil {
				logger.Fatal(ctx, "could not encode metadata", zap.Error(err))
			}
			if !meta.Success {
				os.Exit(2) //nolint: gocritic
			}
		},
	}

	return cmd
}
