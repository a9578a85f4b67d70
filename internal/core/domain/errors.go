package domain

import "go.trai.ch/zerr"

var (
	// ErrEnvReadFailed is returned when the environment file cannot be read.
	ErrEnvReadFailed = zerr.New("failed to read environment file")

	// ErrEnvParseFailed is returned when the environment file is not valid YAML.
	ErrEnvParseFailed = zerr.New("failed to parse environment file")

	// ErrEnvNotMapping is returned when the environment file is not a YAML mapping.
	ErrEnvNotMapping = zerr.New("environment file is not a mapping")

	// ErrEnvMissingDependencies is returned when the environment file has no dependencies section.
	ErrEnvMissingDependencies = zerr.New("no 'dependencies' section in environment file")

	// ErrEnvBadDependencies is returned when the dependencies section is not a list.
	ErrEnvBadDependencies = zerr.New("'dependencies' must be a list")

	// ErrUnknownPlatform is returned when a platform name is not one of the recognized values.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrPortableWriteFailed is returned when the portable environment file cannot be written.
	ErrPortableWriteFailed = zerr.New("failed to write portable environment file")

	// ErrRulesReadFailed is returned when a rules file cannot be read.
	ErrRulesReadFailed = zerr.New("failed to read rules file")

	// ErrRulesParseFailed is returned when a rules file cannot be parsed.
	ErrRulesParseFailed = zerr.New("failed to parse rules file")

	// ErrCondaLockMissing is returned when the conda-lock executable is not on the PATH.
	ErrCondaLockMissing = zerr.New("conda-lock not found, install it with 'pip install conda-lock'")

	// ErrCondaLockFailed is returned when the conda-lock invocation exits non-zero.
	ErrCondaLockFailed = zerr.New("conda-lock failed")
)
