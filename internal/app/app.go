// Package app implements the application layer for conda-portable.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
	"github.com/ShekharNarayanan/conda-portable/internal/engine/portable"
	"github.com/ShekharNarayanan/conda-portable/internal/ui/style"
)

// App represents the main application logic.
type App struct {
	rules  ports.RuleSource
	loader ports.EnvironmentLoader
	writer ports.EnvironmentWriter
	locker ports.Locker
	logger ports.Logger
	stdout io.Writer
}

// New creates a new App instance.
func New(
	rules ports.RuleSource,
	loader ports.EnvironmentLoader,
	writer ports.EnvironmentWriter,
	locker ports.Locker,
	log ports.Logger,
) *App {
	return &App{
		rules:  rules,
		loader: loader,
		writer: writer,
		locker: locker,
		logger: log,
		stdout: os.Stdout,
	}
}

// WithStdout redirects status output.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	EnvPath      string
	FromPlatform string
}

// Run rewrites the environment file into its portable form next to the
// input, then verifies the result by solving it with conda-lock for the
// default target platforms.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// Malformed platform input is rejected before any file is touched.
	origin, err := domain.ParsePlatform(opts.FromPlatform)
	if err != nil {
		return err
	}

	a.banner("Making environment portable")

	doc, err := a.loader.Load(opts.EnvPath)
	if err != nil {
		return err
	}

	table, err := a.rules.Load()
	if err != nil {
		return err
	}

	out := portable.NewTransformer(table).Transform(doc, origin)

	outPath := domain.PortablePath(opts.EnvPath)
	if err := a.writer.Write(outPath, out); err != nil {
		return err
	}
	a.success(fmt.Sprintf("wrote %s (from %s)", outPath, origin))

	a.banner("Verifying portable environment with conda-lock")

	if err := a.locker.Lock(ctx, outPath, domain.DefaultLockTargets()); err != nil {
		// The rewritten file is valid even when the solve fails, so it
		// stays in place for inspection and manual retries.
		a.logger.Info(fmt.Sprintf("portable environment kept at %s", outPath))
		return err
	}
	a.success("wrote conda-lock.yml")

	return nil
}

func (a *App) banner(msg string) {
	_, _ = fmt.Fprintln(a.stdout, style.Banner(msg))
}

func (a *App) success(msg string) {
	_, _ = fmt.Fprintln(a.stdout, style.Success(msg))
}
