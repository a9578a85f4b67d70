// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ShekharNarayanan/conda-portable/internal/adapters/condalock"
	_ "github.com/ShekharNarayanan/conda-portable/internal/adapters/envfile"
	_ "github.com/ShekharNarayanan/conda-portable/internal/adapters/logger"
	_ "github.com/ShekharNarayanan/conda-portable/internal/adapters/rules"
	// Register app nodes.
	_ "github.com/ShekharNarayanan/conda-portable/internal/app"
)
