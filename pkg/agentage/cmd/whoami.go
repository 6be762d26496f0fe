package cmd

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/api"
	"github.com/agentage/agentage/pkg/agentage/auth"
	"github.com/agentage/agentage/pkg/agentage/config"
	"github.com/agentage/agentage/pkg/agentage/output"
)

func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			status := rt.Store().Status()

			switch status.State {
			case config.StateNotAuthenticated:
				_, _ = fmt.Fprintln(rt.Writer(), "Not logged in. Run 'agentage login' to authenticate.")
				return nil
			case config.StateExpired:
				_, _ = fmt.Fprintln(rt.Writer(), "Session expired. Run 'agentage login' to authenticate again.")
				return nil
			}

			user := status.User
			c, err := buildAuthedClient(rt)
			if err != nil {
				return err
			}
			fresh, err := c.Session().Me(cmd.Context())
			switch {
			case err == nil:
				user = fresh
			case auth.CodeOf(err) == auth.CodeSessionExpired:
				_, _ = fmt.Fprintln(rt.Writer(), "Session expired. Run 'agentage login' to authenticate again.")
				return nil
			default:
				rt.Logger().Debugw("could not verify session with registry", "error", err)
				if user == nil {
					user = userFromToken(status.Token)
				}
			}

			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.WriteObject(rt.Writer(), format, user)
			}
			if user == nil {
				_, _ = fmt.Fprintln(rt.Writer(), "Logged in")
				return nil
			}
			if user.Email != "" && user.Email != user.DisplayName() {
				_, _ = fmt.Fprintf(rt.Writer(), "Logged in as %s (%s)\n", user.DisplayName(), user.Email)
			} else {
				_, _ = fmt.Fprintf(rt.Writer(), "Logged in as %s\n", user.DisplayName())
			}
			return nil
		},
	}
}

// userFromToken recovers identity hints from an unverified JWT when the
// registry is unreachable and no user snapshot was stored. The claims are
// display hints only and are never trusted for anything else.
func userFromToken(token string) *api.User {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	user := &api.User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if user.ID == "" && user.Email == "" && user.Name == "" {
		return nil
	}
	return user
}
