package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListProjectsInput is the input schema for the list_projects tool.
type ListProjectsInput struct{}

// ProjectOutput represents one project in tool output.
type ProjectOutput struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Sources     int    `json:"sources"`
	Files       int    `json:"files,omitempty"`
}

// ListProjectsOutput is the output schema for the list_projects tool.
type ListProjectsOutput struct {
	Projects []ProjectOutput `json:"projects"`
	Count    int             `json:"count"`
}

// GenerateInput is the input schema for the generate_plugin tool.
type GenerateInput struct {
	Project string `json:"project" jsonschema:"the project name or ID to generate"`
}

// GenerateOutput is the output schema for the generate_plugin tool.
type GenerateOutput struct {
	Root  string   `json:"root"`
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// InstallInput is the input schema for the install_plugin tool.
type InstallInput struct {
	Project string `json:"project" jsonschema:"the project name or ID to install"`
}

// InstallOutput is the output schema for the install_plugin tool.
type InstallOutput struct {
	Path string `json:"path"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all plugin projects with their generation status",
	}, s.handleListProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_plugin",
		Description: "Generate the plugin or skill package for a project",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "install_plugin",
		Description: "Install a project's generated package into the local marketplace",
	}, s.handleInstall)
}

// handleListProjects handles the list_projects tool invocation.
func (s *Server) handleListProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListProjectsInput,
) (*mcp.CallToolResult, ListProjectsOutput, error) {
	projects, err := s.ports.Projects.List(ctx)
	if err != nil {
		return nil, ListProjectsOutput{}, err
	}

	output := ListProjectsOutput{
		Projects: make([]ProjectOutput, len(projects)),
		Count:    len(projects),
	}
	for i := range projects {
		p := &projects[i]
		files := 0
		if p.Artifact != nil {
			files = len(p.Artifact.Files)
		}
		output.Projects[i] = ProjectOutput{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Type:        string(p.OutputType),
			Status:      string(p.GenerationStatus),
			Sources:     len(p.Sources),
			Files:       files,
		}
	}

	return nil, output, nil
}

// handleGenerate handles the generate_plugin tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if s.ports.Generation == nil {
		return nil, GenerateOutput{}, errors.New("generation service unavailable")
	}

	project, err := s.ports.Projects.Get(ctx, input.Project)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	artifact, err := s.ports.Generation.Generate(ctx, project, nil)
	if err != nil {
		return nil, GenerateOutput{}, err
	}
	if err := s.ports.Projects.AttachArtifact(ctx, project, artifact); err != nil {
		return nil, GenerateOutput{}, err
	}

	output := GenerateOutput{
		Root:  artifact.RootDirectoryName,
		Files: make([]string, len(artifact.Files)),
		Count: len(artifact.Files),
	}
	for i := range artifact.Files {
		output.Files[i] = artifact.Files[i].RelativePath
	}

	return nil, output, nil
}

// handleInstall handles the install_plugin tool invocation.
func (s *Server) handleInstall(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InstallInput,
) (*mcp.CallToolResult, InstallOutput, error) {
	if s.ports.Install == nil {
		return nil, InstallOutput{}, errors.New("install service unavailable")
	}

	project, err := s.ports.Projects.Get(ctx, input.Project)
	if err != nil {
		return nil, InstallOutput{}, err
	}

	path, err := s.ports.Install.Install(ctx, project)
	if err != nil {
		return nil, InstallOutput{}, err
	}

	return nil, InstallOutput{Path: path}, nil
}
