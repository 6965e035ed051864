package domain

import "github.com/google/uuid"

// MCPTransport is the transport kind of a configured MCP server.
type MCPTransport string

// MCP transports.
const (
	MCPTransportHTTP  MCPTransport = "http"
	MCPTransportStdio MCPTransport = "stdio"
)

// MCPServerConfig describes one MCP server entry in .mcp.json.
// URL applies to http servers; Command and Args apply to stdio servers.
type MCPServerConfig struct {
	ID        string
	Name      string
	Transport MCPTransport
	URL       string
	Command   string
	Args      []string
}

// NewMCPServerConfig returns an http server entry.
func NewMCPServerConfig() MCPServerConfig {
	return MCPServerConfig{
		ID:        uuid.New().String(),
		Transport: MCPTransportHTTP,
	}
}
