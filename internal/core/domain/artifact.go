package domain

import (
	"path"
	"sort"
	"strings"
)

// GeneratedFile is one virtual file in a generated artifact.
type GeneratedFile struct {
	// RelativePath is the slash-separated path under the artifact root.
	RelativePath string

	// Content is the file body.
	Content string

	// IsDirectory marks explicit directory entries.
	IsDirectory bool
}

// FileName returns the last path component.
func (f GeneratedFile) FileName() string {
	return path.Base(f.RelativePath)
}

// ParentPath returns the directory part of the relative path, or "."
// for root-level files.
func (f GeneratedFile) ParentPath() string {
	return path.Dir(f.RelativePath)
}

// GeneratedArtifact is the output of assembly: the flat, ordered file
// list plus the root directory name. The file list is the single source
// of truth; the tree view is always recomputed from it.
type GeneratedArtifact struct {
	Files             []GeneratedFile
	RootDirectoryName string
}

// FileTreeNode is one node of the derived directory tree.
type FileTreeNode struct {
	// Name is the path component at this level.
	Name string

	// File is set for leaf file nodes, nil for directories.
	File *GeneratedFile

	// Children are sorted by name.
	Children []FileTreeNode
}

// IsDirectory reports whether the node represents a directory.
func (n FileTreeNode) IsDirectory() bool {
	return n.File == nil || n.File.IsDirectory
}

// FileTree computes the directory tree from the flat file list. It is a
// pure function: rebuilding from the same list yields structurally
// identical trees. Entries are sorted by name at every level.
func (a GeneratedArtifact) FileTree() []FileTreeNode {
	return BuildFileTree(a.Files)
}

// BuildFileTree merges slash-separated relative paths into a nested
// tree, sorted by name at every level.
func BuildFileTree(files []GeneratedFile) []FileTreeNode {
	sorted := make([]GeneratedFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RelativePath < sorted[j].RelativePath
	})

	root := newTreeBuilder()
	for _, f := range sorted {
		root.insert(strings.Split(f.RelativePath, "/"), f)
	}
	return root.build()
}

// treeBuilder accumulates children keyed by name before sorting.
type treeBuilder struct {
	children map[string]*treeBuilder
	file     *GeneratedFile
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{children: make(map[string]*treeBuilder)}
}

func (b *treeBuilder) insert(components []string, file GeneratedFile) {
	if len(components) == 0 {
		return
	}
	name := components[0]
	child, ok := b.children[name]
	if !ok {
		child = newTreeBuilder()
		b.children[name] = child
	}
	if len(components) == 1 {
		f := file
		child.file = &f
		return
	}
	child.insert(components[1:], file)
}

func (b *treeBuilder) build() []FileTreeNode {
	names := make([]string, 0, len(b.children))
	for name := range b.children {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]FileTreeNode, 0, len(names))
	for _, name := range names {
		child := b.children[name]
		nodes = append(nodes, FileTreeNode{
			Name:     name,
			File:     child.file,
			Children: child.build(),
		})
	}
	return nodes
}
