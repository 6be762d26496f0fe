package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/client"
	"github.com/agentage/agentage/pkg/agentage/output"
)

func NewSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search agents in the registry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			c, err := buildClient(rt)
			if err != nil {
				return err
			}
			agents, err := c.Agents().Search(cmd.Context(), client.SearchOptions{Query: query, Limit: limit})
			if err != nil {
				return err
			}

			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			switch format {
			case output.FormatTable, output.FormatWide:
				if len(agents) == 0 {
					_, _ = fmt.Fprintln(rt.Writer(), "No agents found")
					return nil
				}
				output.WriteAgentTable(rt.Writer(), agents)
				return nil
			default:
				return output.WriteObject(rt.Writer(), format, agents)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of results")

	return cmd
}
