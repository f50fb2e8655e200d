package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phonics-backend/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with auth.jwt_secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return errors.New("auth.jwt_secret is not configured")
			}
			if role != auth.RoleAdmin && role != auth.RoleTeacher {
				return fmt.Errorf("role must be %q or %q", auth.RoleAdmin, auth.RoleTeacher)
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl)
			token, err := mgr.GenerateAccessToken(subject, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (user id)")
	cmd.Flags().StringVar(&role, "role", auth.RoleTeacher, "Role claim: admin or teacher")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Lifetime (default auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
