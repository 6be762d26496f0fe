package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentage/agentage/pkg/agentage/agentfile"
	"github.com/agentage/agentage/pkg/agentage/api"
	"github.com/agentage/agentage/pkg/agentage/config"
)

func NewCreateCommand() *cobra.Command {
	var (
		global      bool
		force       bool
		description string
		model       string
		tools       []string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new agent definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			manifest := api.AgentManifest{
				Name:        name,
				ID:          uuid.NewString(),
				Description: description,
				Version:     "0.1.0",
				Model:       model,
				Tools:       tools,
			}
			if details := agentfile.Validate(manifest); details != nil {
				return validationError(details)
			}

			dir := config.ProjectAgentsDir()
			if global {
				dir = config.GlobalAgentsDir()
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create agents dir: %w", err)
			}
			path := filepath.Join(dir, name+".md")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("agent file already exists: %s (use --force to overwrite)", path)
			}

			file := &agentfile.File{
				Manifest:     manifest,
				Instructions: starterInstructions(name),
			}
			data, err := agentfile.Encode(file)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(rt.Writer(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Create in the global agents directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing agent file")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Agent description")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model the agent runs on")
	cmd.Flags().StringSliceVarP(&tools, "tools", "t", nil, "Tools the agent may use")

	return cmd
}

func starterInstructions(name string) string {
	return fmt.Sprintf("You are %s.\n\nDescribe the agent's role, constraints, and working style here.\n", name)
}

func validationError(details map[string]string) error {
	return fmt.Errorf("invalid agent manifest:\n%s", formatDetails(details))
}

func formatDetails(details map[string]string) string {
	fields := make([]string, 0, len(details))
	for field := range details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("  %s: %s", field, details[field]))
	}
	return strings.Join(lines, "\n")
}
