// Package normalisers contains the per-format document normalisers and
// the registry that selects one by file extension. Each normaliser
// reduces raw bytes to extracted text plus classified sections.
package normalisers
