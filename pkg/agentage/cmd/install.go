package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/agentfile"
	"github.com/agentage/agentage/pkg/agentage/api"
	"github.com/agentage/agentage/pkg/agentage/config"
)

func NewInstallCommand() *cobra.Command {
	var (
		project bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "install <name>",
		Short: "Install an agent from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			c, err := buildClient(rt)
			if err != nil {
				return err
			}
			agent, err := c.Agents().Get(cmd.Context(), name)
			if err != nil {
				return err
			}
			content, err := c.Agents().Content(cmd.Context(), name)
			if err != nil {
				return err
			}

			dir := config.GlobalAgentsDir()
			if project {
				dir = config.ProjectAgentsDir()
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create agents dir: %w", err)
			}
			path := filepath.Join(dir, agent.Name+".md")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("agent file already exists: %s (use --force to overwrite)", path)
			}

			file := &agentfile.File{
				Manifest: api.AgentManifest{
					Name:        agent.Name,
					Description: agent.Description,
					Version:     agent.Version,
					Model:       agent.Model,
					Tools:       agent.Tools,
				},
				Instructions: content,
			}
			data, err := agentfile.Encode(file)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			version := agent.Version
			if version == "" {
				version = "latest"
			}
			_, _ = fmt.Fprintf(rt.Writer(), "Installed %s@%s to %s\n", agent.Name, version, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&project, "project", "p", false, "Install into the project agents directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing agent file")

	return cmd
}
