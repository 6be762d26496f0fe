package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/output"
	"github.com/agentage/agentage/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show agentage version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			info := version.GetBuildInfo()

			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.WriteObject(rt.Writer(), format, info)
			default:
				_, _ = fmt.Fprintf(rt.Writer(), "agentage %s (commit: %s, built: %s)\n", info.Version, info.GitCommit, info.BuildDate)
				return nil
			}
		},
	}
}
