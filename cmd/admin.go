package main

import (
	"context"
	"myblog/internal/auth"
	"myblog/internal/config"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adminCommand constructs the 'admin' subcommand that creates an admin account
// or resets the password and profile of an existing one.
func adminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Creates or updates an admin account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			email, _ := cmd.Flags().GetString("email")
			nickname, _ := cmd.Flags().GetString("nickname")

			username = strings.TrimSpace(username)
			if username == "" {
				logger.Fatal(ctx, "username is required")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := pg.UpsertUser(ctx, domain.User{
				Username:     username,
				PasswordHash: hash,
				Email:        strings.TrimSpace(email),
				Nickname:     strings.TrimSpace(nickname),
				Enabled:      true,
			})
			if err != nil {
				logger.Fatal(ctx, "could not save admin account", zap.Error(err))
			}

			logger.Info(ctx, "admin account saved", zap.Int64("id", user.ID), zap.String("username", user.Username))
		},
	}

	cmd.Flags().String("username", "", "Admin username")
	cmd.Flags().String("password", "", "Admin password")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("nickname", "", "Display name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
