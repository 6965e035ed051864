// Package services implements the driving port interfaces.
// Services contain the core business logic of the generation
// pipeline and orchestrate calls to driven ports (adapters).
//
// Services perform no filesystem or network I/O themselves.
package services
