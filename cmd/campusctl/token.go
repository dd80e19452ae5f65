package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/unilink/campus-api/internal/infrastructure/security"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect session tokens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify TOKEN",
		Short: "Verify a token with JWT_SECRET and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			claims, err := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).Verify(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user_id:    %s\n", claims.UserID)
			fmt.Fprintf(out, "email:      %s\n", claims.Email)
			fmt.Fprintf(out, "name:       %s\n", claims.Name)
			fmt.Fprintf(out, "role:       %s\n", claims.Role)
			fmt.Fprintf(out, "expires_at: %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	})
	return cmd
}
