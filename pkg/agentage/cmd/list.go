package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/agentfile"
	"github.com/agentage/agentage/pkg/agentage/output"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List local agent definitions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			files, warnings := agentfile.ScanAll()
			for _, warning := range warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping %v\n", warning)
			}

			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			switch format {
			case output.FormatTable:
				if len(files) == 0 {
					_, _ = fmt.Fprintln(rt.Writer(), "No agents found")
					return nil
				}
				output.WriteAgentFileTable(rt.Writer(), files)
				return nil
			case output.FormatWide:
				if len(files) == 0 {
					_, _ = fmt.Fprintln(rt.Writer(), "No agents found")
					return nil
				}
				output.WriteAgentFileTableWide(rt.Writer(), files)
				return nil
			default:
				return output.WriteObject(rt.Writer(), format, files)
			}
		},
	}
}
