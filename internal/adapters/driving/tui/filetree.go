package tui

import (
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// RenderFileTree renders a generated artifact as a styled directory
// tree rooted at the artifact's root directory name.
func RenderFileTree(artifact *domain.GeneratedArtifact, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var b strings.Builder
	b.WriteString(s.Directory.Render(artifact.RootDirectoryName+"/") + "\n")
	renderNodes(&b, artifact.FileTree(), "", s)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []domain.FileTreeNode, prefix string, s *styles.Styles) {
	for i := range nodes {
		node := &nodes[i]
		last := i == len(nodes)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		name := node.Name
		style := s.File
		if node.IsDirectory() {
			name += "/"
			style = s.Directory
		}

		b.WriteString(prefix + connector + style.Render(name) + "\n")
		renderNodes(b, node.Children, childPrefix, s)
	}
}
