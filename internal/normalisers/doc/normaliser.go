// Package doc normalises legacy binary Word (.doc) documents through
// an external text converter. textutil is used on macOS and antiword
// everywhere else, whichever is found first in PATH.
package doc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/runner"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/sections"
)

// ErrDocToolNotFound indicates no .doc converter is installed.
var ErrDocToolNotFound = errors.New("no .doc converter (textutil or antiword) found in PATH")

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles legacy Word documents.
type Normaliser struct {
	runner driven.CommandRunner
}

// New creates a new legacy Word normaliser using the host converter.
func New() *Normaliser {
	return NewWithRunner(runner.New())
}

// NewWithRunner creates a legacy Word normaliser with a custom runner.
func NewWithRunner(r driven.CommandRunner) *Normaliser {
	return &Normaliser{runner: r}
}

// CheckAvailable reports whether a converter is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("textutil"); err == nil {
		return nil
	}
	if _, err := exec.LookPath("antiword"); err == nil {
		return nil
	}
	return ErrDocToolNotFound
}

// InstallInstructions returns human-readable install guidance.
func InstallInstructions() string {
	return "a converter is required for legacy .doc import.\n" +
		"  macOS:  textutil (preinstalled)\n" +
		"  Debian: apt install antiword"
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{"doc"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise converts the document to text with the host converter and
// derives sections heuristically from the result.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawSource) (*domain.SourceDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	tmpFile, err := os.CreateTemp("", "pluginsmith-*.doc")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(raw.Content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	name, args := converterCommand(tmpPath)
	output, err := n.runner.Run(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("%s failed for %s: %w", name, raw.FileName, err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return nil, domain.ErrTextExtractionFailed
	}

	return &domain.SourceDocument{
		ID:            uuid.New().String(),
		FileName:      raw.FileName,
		Type:          domain.TypeDoc,
		ImportedAt:    time.Now(),
		RawContent:    text,
		Sections:      sections.Split(text),
		IsWebResource: raw.IsWebResource,
		SourceURL:     raw.SourceURL,
	}, nil
}

// converterCommand picks the first available converter for the host.
func converterCommand(path string) (string, []string) {
	if _, err := exec.LookPath("textutil"); err == nil {
		return "textutil", []string{"-convert", "txt", "-stdout", path}
	}
	return "antiword", []string{path}
}
