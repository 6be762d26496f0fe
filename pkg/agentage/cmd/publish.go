package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/agentfile"
	"github.com/agentage/agentage/pkg/agentage/client"
)

func NewPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <name|path>",
		Short: "Publish a local agent to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			file, err := agentfile.Resolve(args[0])
			if err != nil {
				return err
			}
			if details := agentfile.Validate(file.Manifest); details != nil {
				return validationError(details)
			}

			c, err := buildAuthedClient(rt)
			if err != nil {
				return err
			}
			agent, err := c.Agents().Publish(cmd.Context(), client.PublishRequest{
				AgentManifest: file.Manifest,
				Content:       file.Instructions,
			})
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity && len(apiErr.Details) > 0 {
					return fmt.Errorf("registry rejected the manifest:\n%s", formatDetails(apiErr.Details))
				}
				return err
			}

			version := agent.Version
			if version == "" {
				version = file.Manifest.Version
			}
			_, _ = fmt.Fprintf(rt.Writer(), "Published %s@%s\n", agent.Name, version)
			return nil
		},
	}
}
