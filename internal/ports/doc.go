// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (the CLI, behaviour scenarios). Store ports are implemented by the
// storage drivers and called by the application layer.
package ports
