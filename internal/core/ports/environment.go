// Package ports defines the core interfaces for the application.
package ports

import "github.com/ShekharNarayanan/conda-portable/internal/core/domain"

// EnvironmentLoader defines the interface for reading conda environment files.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentLoader interface {
	// Load reads and parses the environment file at the given path.
	Load(path string) (*domain.EnvironmentDocument, error)
}

// EnvironmentWriter defines the interface for writing conda environment files.
type EnvironmentWriter interface {
	// Write serializes the document to the given path. The write is
	// all-or-nothing: on failure no partial file is left behind.
	Write(path string, doc *domain.EnvironmentDocument) error
}
