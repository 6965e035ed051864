package mcp

import (
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Projects manages stored projects.
	Projects driving.ProjectService

	// Generation assembles projects into artifacts.
	Generation driving.GenerationService

	// Install materialises artifacts locally.
	Install driving.InstallService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Projects == nil {
		return ErrMissingProjectService
	}
	// Generation and Install are optional; their tools report
	// unavailability when invoked.
	return nil
}
