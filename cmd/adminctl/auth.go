package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fc-admin/internal/auth"
	"fc-admin/internal/supabase"
)

// requireBackend fails the command before any call when the shared client
// cannot be built.
func requireBackend(cmd *cobra.Command, _ []string) error {
	if _, err := supabase.Shared(); err != nil {
		return fmt.Errorf("backend not configured: %w", err)
	}
	return nil
}

func withToken(ctx context.Context, token string) (context.Context, error) {
	if token == "" {
		return nil, errors.New("--token is required")
	}
	return supabase.ContextWithSession(ctx, supabase.SessionFromToken(token)), nil
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in with email and password and print the access token",
		PreRunE: requireBackend,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
				fmt.Fprintln(cmd.OutOrStdout())
			}

			res, err := auth.SignInAdmin(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.User != nil {
				fmt.Fprintf(out, "signed in as %s (%s)\n", res.User.Email, res.User.ID)
			}
			if res.Session != nil {
				fmt.Fprintf(out, "access token: %s\n", res.Session.AccessToken)
				if exp := res.Session.Expiry(); !exp.IsZero() {
					fmt.Fprintf(out, "expires: %s\n", exp.UTC().Format(time.RFC3339))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:     "whoami",
		Short:   "Show the user owning an access token",
		PreRunE: requireBackend,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := withToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			u, err := auth.GetCurrentUser(ctx)
			if err != nil {
				return err
			}
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", u.ID, u.Email, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token from login")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:     "logout",
		Short:   "End the session of an access token",
		PreRunE: requireBackend,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := withToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			if err := auth.SignOutAdmin(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token from login")
	return cmd
}
