package main

import (
	"context"
	"fmt"
	"myblog/internal/auth"
	"myblog/internal/config"
	"myblog/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that issues an admin bearer
// token signed with the configured secret, without a login round trip.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issues an admin bearer token for the given username",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl <= 0 {
				ttl = cfg.JWT.Expiration
			}

			tokens, err := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Issuer, ttl)
			if err != nil {
				logger.Fatal(context.Background(), "could not create token issuer", zap.Error(err))
			}
			signed, err := tokens.Issue(username)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("username", "", "Admin username written to the token subject")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30m, 1h); defaults to jwt.expiration")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
