// Package condalock shells out to the conda-lock solver.
package condalock

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

const binaryName = "conda-lock"

// Locker implements ports.Locker by invoking the conda-lock binary.
type Locker struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewLocker creates a Locker streaming solver output to the process streams.
func NewLocker(logger ports.Logger) *Locker {
	return &Locker{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects solver output, primarily for tests.
func (l *Locker) SetOutput(stdout, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

// Lock solves envPath for the given targets. Solver output streams through
// unbuffered so progress is visible during long solves.
func (l *Locker) Lock(ctx context.Context, envPath string, targets []domain.LockTarget) error {
	if err := l.probe(ctx); err != nil {
		return err
	}

	args := []string{"lock", "--mamba", "--file", envPath}
	for _, target := range targets {
		args = append(args, "--platform", string(target))
	}

	l.logger.Info(fmt.Sprintf("+ %s %s", binaryName, strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, binaryName, args...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Run(); err != nil {
		// Capture exit code if possible
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCondaLockFailed.Error()), "exit_code", exitCode)
	}

	return nil
}

// probe fails fast when the solver is not installed, before a long solve is
// attempted. Output is discarded, only the verdict matters.
func (l *Locker) probe(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, binaryName, "--version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return zerr.Wrap(err, domain.ErrCondaLockMissing.Error())
	}

	return nil
}
