package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/config"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/middleware"
)

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Print a signed admin token for ADMIN_AUTH_MODE=jwt",
	Args:  cobra.NoArgs,
}

func init() {
	p := adminTokenCmd.Flags()
	subject := p.StringP("subject", "s", "admin", "token subject")
	ttl := p.DurationP("ttl", "t", 24*time.Hour, "token lifetime")

	adminTokenCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		token, err := middleware.IssueAdminToken(cfg.JWTSecret, *subject, *ttl)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}
}
