// Package runner provides a CommandRunner backed by os/exec.
package runner

import (
	"context"
	"os/exec"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure Runner implements the interface.
var _ driven.CommandRunner = (*Runner)(nil)

// Runner executes external commands on the host.
type Runner struct{}

// New creates a new command runner.
func New() *Runner {
	return &Runner{}
}

// Run executes the named command and returns its combined output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
