package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/auth"
	"github.com/agentage/agentage/pkg/agentage/config"
)

func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the registry via device authorization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			store := rt.Store()

			if status := store.Status(); status.State == config.StateAuthenticated {
				name := status.User.DisplayName()
				if name == "" {
					name = "this account"
				}
				_, _ = fmt.Fprintf(rt.Writer(), "Already logged in as %s. Run 'agentage logout' to switch accounts.\n", name)
				return nil
			}

			flow := auth.NewFlow(rt.RegistryURL(), store.DeviceID(),
				auth.WithOutput(rt.Writer()),
				auth.WithLogger(rt.Logger()),
			)
			result, err := flow.Login(cmd.Context())
			if err != nil {
				return err
			}

			creds := &config.AuthConfig{
				Token: result.Token.AccessToken,
				User:  result.User,
			}
			if !result.Token.Expiry.IsZero() {
				expiresAt := result.Token.Expiry
				creds.ExpiresAt = &expiresAt
			}
			if err := store.SaveAuth(creds); err != nil {
				return err
			}

			if name := result.User.DisplayName(); name != "" {
				_, _ = fmt.Fprintf(rt.Writer(), "Logged in as %s\n", name)
			} else {
				_, _ = fmt.Fprintln(rt.Writer(), "Logged in")
			}
			return nil
		},
	}
}
