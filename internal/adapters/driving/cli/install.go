package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [project]",
	Short: "Install the generated package locally",
	Long: `Write the project's generated artifact into the local Claude Code
marketplace and register it in the marketplace manifest. Reinstalling
replaces the previous files and manifest entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

var exportCmd = &cobra.Command{
	Use:   "export [project] [destination]",
	Short: "Export the generated package",
	Long: `Write the project's generated artifact under the destination
directory. With --zip the destination names a .zip archive instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

// exportZip switches export to archive packaging.
var exportZip bool

func init() {
	exportCmd.Flags().BoolVar(&exportZip, "zip", false, "Package as a zip archive")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(exportCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if projectService == nil || installService == nil {
		return errors.New("install service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	path, err := installService.Install(cmd.Context(), project)
	if err != nil {
		return fmt.Errorf("failed to install: %w", err)
	}

	cmd.Printf("Installed to %s\n", path)
	cmd.Println("Restart Claude Code to pick up the new package.")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if projectService == nil || installService == nil {
		return errors.New("install service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if exportZip {
		if err := installService.ExportArchive(cmd.Context(), project, args[1]); err != nil {
			return fmt.Errorf("failed to export archive: %w", err)
		}
		cmd.Printf("Exported archive to %s\n", args[1])
		return nil
	}

	path, err := installService.Export(cmd.Context(), project, args[1])
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	cmd.Printf("Exported to %s\n", path)
	return nil
}
