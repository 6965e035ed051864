// Package mcp provides an MCP (Model Context Protocol) server adapter
// for PluginSmith. It lets AI assistants create and generate plugin
// packages through tools instead of the CLI.
package mcp

import "errors"

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("mcp: project service is required")
