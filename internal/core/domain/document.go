package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentType identifies the source format of an imported document.
type DocumentType string

// Supported source document formats.
const (
	TypeMarkdown  DocumentType = "md"
	TypePlainText DocumentType = "txt"
	TypePDF       DocumentType = "pdf"
	TypeDocx      DocumentType = "docx"
	TypeDoc       DocumentType = "doc"
	TypeXlsx      DocumentType = "xlsx"
	TypeWebPage   DocumentType = "html"
)

// DisplayName returns a human-readable label for the document type.
func (t DocumentType) DisplayName() string {
	switch t {
	case TypeMarkdown:
		return "Markdown"
	case TypePlainText:
		return "Plain Text"
	case TypePDF:
		return "PDF"
	case TypeDocx:
		return "Word"
	case TypeDoc:
		return "Word (Legacy)"
	case TypeXlsx:
		return "Excel"
	case TypeWebPage:
		return "Web Page"
	default:
		return string(t)
	}
}

// DocumentTypeForPath maps a file path to its document type by extension.
// The second return value is false for unsupported extensions.
func DocumentTypeForPath(path string) (DocumentType, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "md", "markdown":
		return TypeMarkdown, true
	case "txt":
		return TypePlainText, true
	case "pdf":
		return TypePDF, true
	case "docx":
		return TypeDocx, true
	case "doc":
		return TypeDoc, true
	case "xlsx":
		return TypeXlsx, true
	case "html", "htm":
		return TypeWebPage, true
	default:
		return "", false
	}
}

// SectionRole is a coarse semantic classification of a document section.
type SectionRole string

// Section roles, in classification priority order.
const (
	RoleOverview        SectionRole = "overview"
	RoleAPIReference    SectionRole = "api-reference"
	RoleCodeExample     SectionRole = "code-example"
	RoleConfiguration   SectionRole = "configuration"
	RoleInstallation    SectionRole = "installation"
	RoleUsage           SectionRole = "usage"
	RoleTroubleshooting SectionRole = "troubleshooting"
	RoleOther           SectionRole = "other"
)

// ContentSection is a titled, role-classified excerpt of a source document.
type ContentSection struct {
	// Title is the section heading. "Introduction" is the fallback for
	// content that appears before the first detected heading.
	Title string

	// Content is the trimmed section body.
	Content string

	// Level is the heading depth, starting at 1.
	Level int

	// Role is the semantic classification inferred from the title.
	Role SectionRole
}

// SourceDocument is one imported unit of raw material, reduced to text
// plus classified sections. Immutable after construction except for the
// owning project's file name override.
type SourceDocument struct {
	// ID is the unique identifier for the document.
	ID string

	// FileName is the display name, derived from the path or URL.
	FileName string

	// Type is the detected source format.
	Type DocumentType

	// ImportedAt is when the document entered the project.
	ImportedAt time.Time

	// RawContent is the full extracted text. Always non-nil; an empty
	// extraction fails construction instead of producing an empty document.
	RawContent string

	// Sections is the ordered list of classified sections.
	Sections []ContentSection

	// IsWebResource marks documents fetched from a URL.
	IsWebResource bool

	// SourceURL is the origin URL for web resources, empty otherwise.
	SourceURL string
}

// RawSource is the opaque input handed to a normaliser: the bytes of a
// file or fetched resource plus where they came from.
type RawSource struct {
	// FileName is the display name for the resulting document.
	FileName string

	// Content is the raw bytes.
	Content []byte

	// IsWebResource marks content fetched from a URL.
	IsWebResource bool

	// SourceURL is the origin URL for web content, empty otherwise.
	SourceURL string
}
