package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage plugin projects",
	Long:  `Create, list, inspect, and delete plugin projects.`,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Long: `Create a new project. The name is normalised to kebab-case; the
original spelling is kept as the display name.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project]",
	Short: "Show project details",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

var (
	projectType        string
	projectDescription string
)

func init() {
	projectCreateCmd.Flags().StringVarP(&projectType, "type", "t", "plugin", "Output type: plugin or skill")
	projectCreateCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "Project description")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	outputType, err := parseOutputType(projectType)
	if err != nil {
		return err
	}

	project, err := projectService.Create(cmd.Context(), args[0], outputType)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if projectDescription != "" {
		project.Description = projectDescription
		if err := projectService.Save(cmd.Context(), project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
	}

	cmd.Printf("Created %s project: %s\n", project.OutputType, project.Name)
	return nil
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	projects, err := projectService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		cmd.Println("No projects yet. Run 'pluginsmith project create <name>' to start.")
		return nil
	}

	for i := range projects {
		p := &projects[i]
		cmd.Printf("  %s\n", p.Name)
		cmd.Printf("    Type: %s  Status: %s  Sources: %d\n",
			p.OutputType, p.GenerationStatus, len(p.Sources))
		if p.Description != "" {
			cmd.Printf("    %s\n", p.Description)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d projects\n", len(projects))
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	cmd.Printf("Name: %s\n", project.Name)
	cmd.Printf("Display name: %s\n", project.DisplayName)
	cmd.Printf("Type: %s\n", project.OutputType)
	cmd.Printf("Version: %s\n", project.Version)
	cmd.Printf("Status: %s\n", project.GenerationStatus)
	if project.Description != "" {
		cmd.Printf("Description: %s\n", project.Description)
	}
	cmd.Printf("Created: %s\n", project.CreatedAt.Format("2006-01-02 15:04"))

	if len(project.Sources) > 0 {
		cmd.Printf("\nSources (%d):\n", len(project.Sources))
		for i := range project.Sources {
			src := &project.Sources[i]
			origin := "file"
			if src.IsWebResource {
				origin = src.SourceURL
			}
			cmd.Printf("  %s (%s, %d sections, %s)\n",
				src.FileName, src.Type.DisplayName(), len(src.Sections), origin)
		}
	}

	cfg := &project.PluginConfig
	if len(cfg.Commands)+len(cfg.Skills)+len(cfg.Agents) > 0 {
		cmd.Println("\nConfiguration:")
		for i := range cfg.Commands {
			cmd.Printf("  command  /%s\n", cfg.Commands[i].Name)
		}
		for i := range cfg.Skills {
			cmd.Printf("  skill    %s\n", cfg.Skills[i].Name)
		}
		for i := range cfg.Agents {
			cmd.Printf("  agent    %s\n", cfg.Agents[i].Name)
		}
	}

	if project.Artifact != nil {
		cmd.Printf("\nArtifact: %d files under %s/\n",
			len(project.Artifact.Files), project.Artifact.RootDirectoryName)
	}

	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	if err := projectService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	cmd.Printf("Deleted project: %s\n", args[0])
	return nil
}

func parseOutputType(raw string) (domain.OutputType, error) {
	switch raw {
	case "plugin":
		return domain.OutputPlugin, nil
	case "skill":
		return domain.OutputSkill, nil
	default:
		return "", fmt.Errorf("unknown output type %q (expected plugin or skill)", raw)
	}
}
