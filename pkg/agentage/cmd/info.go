package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/output"
)

func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show details of a registry agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			c, err := buildClient(rt)
			if err != nil {
				return err
			}
			agent, err := c.Agents().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			format, err := rt.OutputFormat()
			if err != nil {
				return err
			}
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.WriteObject(rt.Writer(), format, agent)
			}

			tw := tabwriter.NewWriter(rt.Writer(), 2, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(tw, "Name:\t%s\n", agent.Name)
			if agent.Description != "" {
				_, _ = fmt.Fprintf(tw, "Description:\t%s\n", agent.Description)
			}
			if agent.Version != "" {
				_, _ = fmt.Fprintf(tw, "Version:\t%s\n", agent.Version)
			}
			if agent.Model != "" {
				_, _ = fmt.Fprintf(tw, "Model:\t%s\n", agent.Model)
			}
			if len(agent.Tools) > 0 {
				_, _ = fmt.Fprintf(tw, "Tools:\t%s\n", strings.Join(agent.Tools, ", "))
			}
			if agent.Author != nil {
				_, _ = fmt.Fprintf(tw, "Author:\t%s\n", agent.Author.DisplayName())
			}
			_, _ = fmt.Fprintf(tw, "Downloads:\t%d\n", agent.Downloads)
			if !agent.UpdatedAt.IsZero() {
				_, _ = fmt.Fprintf(tw, "Updated:\t%s\n", agent.UpdatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}
