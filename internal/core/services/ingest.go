package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService turns local files and web resources into normalised
// source documents.
type IngestService struct {
	registry driven.NormaliserRegistry
	fetcher  driven.WebFetcher
}

// NewIngestService creates a new ingest service.
func NewIngestService(registry driven.NormaliserRegistry, fetcher driven.WebFetcher) *IngestService {
	return &IngestService{
		registry: registry,
		fetcher:  fetcher,
	}
}

// ImportFile normalises one local file by extension.
func (s *IngestService) ImportFile(ctx context.Context, fileName string, content []byte) (*domain.SourceDocument, error) {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
	if ext == "" {
		return nil, domain.ErrUnsupportedFileType
	}

	normaliser, err := s.registry.ForExtension(ext)
	if err != nil {
		return nil, err
	}

	logger.Debug("importing %s via %s normaliser", fileName, ext)
	return normaliser.Normalise(ctx, &domain.RawSource{
		FileName: fileName,
		Content:  content,
	})
}

// ImportURL fetches a web resource, sniffs its format from the content
// type and URL extension, and routes it to the matching normaliser.
// Anything not recognised as a binary document or Markdown falls back
// to HTML stripping.
func (s *IngestService) ImportURL(ctx context.Context, rawURL string) (*domain.SourceDocument, error) {
	if s.fetcher == nil {
		return nil, domain.ErrNotConfigured
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, domain.ErrInvalidURL
	}

	content, contentType, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFetchFailed, err)
	}

	ext := sniffExtension(contentType, parsed.Path)
	normaliser, err := s.registry.ForExtension(ext)
	if err != nil {
		return nil, err
	}

	fileName := webFileName(parsed, ext)
	logger.Debug("fetched %s (%s), routing to %s normaliser", rawURL, contentType, ext)
	return normaliser.Normalise(ctx, &domain.RawSource{
		FileName:      fileName,
		Content:       content,
		IsWebResource: true,
		SourceURL:     rawURL,
	})
}

// sniffExtension maps a fetched resource onto a normaliser extension.
// Content type is checked before the URL path so that mislabelled
// extensions do not route binary data to a text extractor.
func sniffExtension(contentType, urlPath string) string {
	ct := strings.ToLower(contentType)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	switch ct {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "application/msword":
		return "doc"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "xlsx"
	case "text/markdown":
		return "md"
	case "text/plain":
		return "txt"
	}

	switch strings.TrimPrefix(strings.ToLower(path.Ext(urlPath)), ".") {
	case "pdf":
		return "pdf"
	case "docx":
		return "docx"
	case "doc":
		return "doc"
	case "xlsx":
		return "xlsx"
	case "md", "markdown":
		return "md"
	case "txt":
		return "txt"
	}

	return "html"
}

// webFileName derives a display name from the URL, keeping the sniffed
// extension. A blank path falls back to the host.
func webFileName(parsed *url.URL, ext string) string {
	base := path.Base(parsed.Path)
	if base == "." || base == "/" || base == "" {
		base = parsed.Host
	}
	if strings.TrimPrefix(strings.ToLower(path.Ext(base)), ".") == ext {
		return base
	}
	return base + "." + ext
}
