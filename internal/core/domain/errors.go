package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Extraction errors. Raised by normalisers when a source cannot
	// yield usable text. Reported per document; they never abort the
	// ingestion of other documents.

	// ErrTextExtractionFailed indicates a source produced no usable text.
	ErrTextExtractionFailed = errors.New("could not extract text from document")

	// ErrUnsupportedFileType indicates an unknown file extension or MIME type.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrUnreadableFile indicates a file could not be read or decoded.
	ErrUnreadableFile = errors.New("cannot read file")

	// ErrInvalidStructure indicates a container format (docx, xlsx) is
	// missing the entries the extractor needs.
	ErrInvalidStructure = errors.New("invalid document structure")

	// ErrInvalidURL indicates a string is not a fetchable http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrFetchFailed indicates a web resource returned a non-200 status.
	ErrFetchFailed = errors.New("failed to fetch URL")

	// Generation errors.

	// ErrNotConfigured indicates the content generator has no API key.
	ErrNotConfigured = errors.New("content generator not configured")

	// ErrGeneratorUnavailable indicates no content generator was wired.
	ErrGeneratorUnavailable = errors.New("content generator unavailable")
)
