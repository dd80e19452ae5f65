package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
	"github.com/unilink/campus-api/internal/core/service"
	"github.com/unilink/campus-api/internal/infrastructure/security"
	"github.com/unilink/campus-api/internal/infrastructure/store"
)

type seedAdminOptions struct {
	name     string
	email    string
	password string
}

// newSeedAdminCommand creates an administrator account, or promotes an
// existing one, and prints a session token for it.
func newSeedAdminCommand() *cobra.Command {
	var opts seedAdminOptions
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create or promote an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeedAdmin(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "Campus Admin", "display name for a new account")
	cmd.Flags().StringVar(&opts.email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "password for a new account")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func runSeedAdmin(cmd *cobra.Command, opts seedAdminOptions) error {
	ctx := cmd.Context()
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	stores, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(ctx)

	tokens := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	auth := service.NewAuthService(stores.Users, security.NewBcryptHasher(cfg.Auth.BcryptCost), tokens, log,
		service.WithTokenTTL(cfg.Auth.TokenTTL))

	user, err := stores.Users.FindByEmail(ctx, domain.NormalizeEmail(opts.email))
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		if opts.password == "" {
			return fmt.Errorf("--password is required to create %s", opts.email)
		}
		res, err := auth.Register(ctx, ports.RegisterInput{Name: opts.name, Email: opts.email, Password: opts.password})
		if err != nil {
			return err
		}
		user = res.User
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", user.Email)
	case err != nil:
		return err
	}

	if !user.IsAdmin() {
		if err := stores.Users.SetRole(ctx, user.ID, domain.RoleAdmin); err != nil {
			return err
		}
		user.Role = domain.RoleAdmin
		fmt.Fprintf(cmd.OutOrStdout(), "promoted %s to admin\n", user.Email)
	}

	token, err := tokens.Issue(ports.Claims{UserID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "token: %s\n", token)
	return nil
}
