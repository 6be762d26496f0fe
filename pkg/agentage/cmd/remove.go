package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRemoveCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a published agent from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			if !yes {
				return fmt.Errorf("removing %q is permanent; re-run with --yes to confirm", name)
			}

			c, err := buildAuthedClient(rt)
			if err != nil {
				return err
			}
			if err := c.Agents().Delete(cmd.Context(), name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(rt.Writer(), "Removed %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal without prompting")

	return cmd
}
