// Package pdf normalises PDF documents by shelling out to pdftotext.
//
// The extractor writes the raw bytes to a temporary file and asks
// pdftotext to convert it, so poppler must be installed on the host.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/runner"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/sections"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles PDF documents.
type Normaliser struct {
	runner driven.CommandRunner
}

// New creates a new PDF normaliser using the host pdftotext binary.
func New() *Normaliser {
	return NewWithRunner(runner.New())
}

// NewWithRunner creates a PDF normaliser with a custom command runner.
func NewWithRunner(r driven.CommandRunner) *Normaliser {
	return &Normaliser{runner: r}
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns human-readable install guidance.
func InstallInstructions() string {
	return "pdftotext is required for PDF import.\n" +
		"  macOS:  brew install poppler\n" +
		"  Debian: apt install poppler-utils"
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{"pdf"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise converts the PDF to text via pdftotext and derives
// sections heuristically from the result.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawSource) (*domain.SourceDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	tmpFile, err := os.CreateTemp("", "pluginsmith-*.pdf")
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

	// pdftotext with "-" writes the converted text to stdout.
	output, err := n.runner.Run(ctx, "pdftotext", "-layout", tmpPath, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed for %s: %w", filepath.Base(raw.FileName), err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return nil, domain.ErrTextExtractionFailed
	}

	return &domain.SourceDocument{
		ID:            uuid.New().String(),
		FileName:      raw.FileName,
		Type:          domain.TypePDF,
		ImportedAt:    time.Now(),
		RawContent:    text,
		Sections:      sections.Split(text),
		IsWebResource: raw.IsWebResource,
		SourceURL:     raw.SourceURL,
	}, nil
}
