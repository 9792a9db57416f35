package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue credentials for the bookmarks API",
	}
	cmd.AddCommand(newTokenIssueCmd())
	cmd.AddCommand(newTokenCreateCmd())
	return cmd
}

// token issue signs a short-lived JWT; nothing is stored.
func newTokenIssueCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a JWT for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("JB_JWT_SECRET is not set")
			}
			svc, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
			if err != nil {
				return err
			}
			tok, err := svc.Sign(strings.TrimSpace(user))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id to put in the token subject")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// token create stores a personal access token and prints it once.
func newTokenCreateCmd() *cobra.Command {
	var (
		user      string
		name      string
		expiresIn time.Duration
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a personal access token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, name = strings.TrimSpace(user), strings.TrimSpace(name)
			if user == "" || name == "" {
				return fmt.Errorf("--user and --name must not be blank")
			}
			if expiresIn < 0 {
				return fmt.Errorf("--expires-in must not be negative")
			}

			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			plaintext, hash, err := auth.GenerateToken()
			if err != nil {
				return err
			}
			var expiresAt *time.Time
			if expiresIn > 0 {
				t := time.Now().UTC().Add(expiresIn)
				expiresAt = &t
			}
			rec, err := auth.NewSQLTokenStore(e.db).Create(context.Background(), user, name, hash, expiresAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "created token %s (%s) for %s\n", rec.ID, rec.Name, rec.UserID)
			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "owner of the token")
	cmd.Flags().StringVar(&name, "name", "", "label shown when listing tokens")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "lifetime of the token, e.g. 720h (0 means no expiry)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
