package domain

import "strings"

// SpecName extracts the lowercased package name from a conda match spec or
// pip requirement string. Everything from the first environment marker,
// extras bracket, or version separator onward is ignored:
//
//	"numpy=1.26.4=py312h0123_0"          -> "numpy"
//	"requests[socks]>=2.31"              -> "requests"
//	`pywin32 ; platform_system == "Windows"` -> "pywin32"
func SpecName(spec string) string {
	name, _, _ := strings.Cut(spec, ";")
	name, _, _ = strings.Cut(name, "[")

	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '=', '<', '>':
			return canonicalName(name[:i])
		case '!', '~':
			// "!" and "~" only open a version clause when paired with "=".
			if i+1 < len(name) && name[i+1] == '=' {
				return canonicalName(name[:i])
			}
		}
	}
	return canonicalName(name)
}

// canonicalName lowercases and trims a package name. Matching is an exact
// case-insensitive comparison; pip-style underscore/hyphen folding is
// deliberately not applied, so rule lists stay literal.
func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
