package domain

import (
	"path/filepath"
	"strings"
)

const (
	// PortableSuffix is inserted before the extension of a rewritten
	// environment file name.
	PortableSuffix = ".portable"

	// RulesFileName is the name of the rule table override file.
	RulesFileName = "portable_packages.yaml"

	// ConfigDirName is the directory under the user config root holding
	// conda-portable files.
	ConfigDirName = "conda-portable"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// PortablePath derives the output path for a rewritten environment file.
// The portable file always sits next to its input:
//
//	project/environment.yml -> project/environment.portable.yml
func PortablePath(envPath string) string {
	ext := filepath.Ext(envPath)
	base := strings.TrimSuffix(envPath, ext)
	if ext == "" {
		ext = ".yml"
	}
	return base + PortableSuffix + ext
}
