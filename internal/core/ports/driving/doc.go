// Package driving provides interfaces for application entry points
// (primary/inbound ports). The CLI and TUI depend on these, never on
// service structs directly.
package driving
