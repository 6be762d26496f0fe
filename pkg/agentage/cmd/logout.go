package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/config"
)

func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			store := rt.Store()

			if status := store.Status(); status.State == config.StateNotAuthenticated {
				_, _ = fmt.Fprintln(rt.Writer(), "Not logged in")
				return nil
			}

			// Server-side invalidation is best effort; the local credentials
			// are cleared regardless of whether the registry is reachable.
			if c, err := buildAuthedClient(rt); err == nil {
				if err := c.Session().Logout(cmd.Context()); err != nil {
					rt.Logger().Debugw("server-side logout failed", "error", err)
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(rt.Writer(), "Logged out")
			return nil
		},
	}
}
