// Package ports defines the contracts between the editing core and its
// infrastructure adapters (persistence backends, transports).
package ports
