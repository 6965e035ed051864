package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for PluginSmith resources.
	uriScheme = "pluginsmith://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing projects.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "List of all plugin projects",
		MIMEType:    "application/json",
	}, s.handleProjectsResource)

	// Template for a project's generated files.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "projects/{projectName}/artifact",
		Name:        "project-artifact",
		Description: "Generated file listing for a project",
		MIMEType:    "application/json",
	}, s.handleArtifactResource)
}

// handleProjectsResource returns a list of all projects.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	projects, err := s.ports.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	type projectInfo struct {
		Name    string `json:"name"`
		Type    string `json:"type"`
		Status  string `json:"status"`
		Sources int    `json:"sources"`
	}

	infos := make([]projectInfo, len(projects))
	for i := range projects {
		infos[i] = projectInfo{
			Name:    projects[i].Name,
			Type:    string(projects[i].OutputType),
			Status:  string(projects[i].GenerationStatus),
			Sources: len(projects[i].Sources),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling projects: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleArtifactResource returns the generated file listing of a project.
func (s *Server) handleArtifactResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract projectName from URI: pluginsmith://projects/{projectName}/artifact
	name := extractProjectName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	project, err := s.ports.Projects.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if project.Artifact == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type fileInfo struct {
		Path string `json:"path"`
		Size int    `json:"size"`
	}

	infos := make([]fileInfo, len(project.Artifact.Files))
	for i := range project.Artifact.Files {
		f := &project.Artifact.Files[i]
		infos[i] = fileInfo{Path: f.RelativePath, Size: len(f.Content)}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling files: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProjectName extracts the project name from a URI like
// pluginsmith://projects/{projectName}/artifact.
func extractProjectName(uri string) string {
	const prefix = uriScheme + "projects/"
	const suffix = "/artifact"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
