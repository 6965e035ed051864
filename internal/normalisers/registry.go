package normalisers

import (
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry selects a normaliser by file extension. When multiple
// normalisers claim an extension the highest priority wins.
type Registry struct {
	byExtension map[string]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExtension: make(map[string]driven.Normaliser)}
}

// Register adds a normaliser for all its supported extensions.
func (r *Registry) Register(n driven.Normaliser) {
	for _, ext := range n.SupportedExtensions() {
		ext = strings.ToLower(ext)
		existing, ok := r.byExtension[ext]
		if ok && existing.Priority() >= n.Priority() {
			continue
		}
		r.byExtension[ext] = n
	}
}

// ForExtension returns the normaliser for a lower-cased extension
// (without dot), or domain.ErrUnsupportedFileType.
func (r *Registry) ForExtension(ext string) (driven.Normaliser, error) {
	n, ok := r.byExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	return n, nil
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	return exts
}
