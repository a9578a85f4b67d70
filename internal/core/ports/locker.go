package ports

import (
	"context"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
)

// Locker defines the interface for invoking the external dependency solver.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Lock solves the environment file at envPath for the given target
	// platforms. The solver's own output is streamed through; a non-zero
	// exit is returned as an error. No retries are attempted.
	Lock(ctx context.Context, envPath string, targets []domain.LockTarget) error
}
