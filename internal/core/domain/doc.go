// Package domain contains the core business entities for pluginsmith.
// These types have no dependencies on infrastructure and represent the
// canonical model: projects, imported source documents, plugin
// configuration, and generated artifacts.
package domain
