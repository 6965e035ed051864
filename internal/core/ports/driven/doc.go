// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the content generator, normalisers,
// external converters, stores and writers the core calls out to.
package driven
