// Package rules loads the platform-locked package rule table.
//
// The table ships embedded in the binary and can be extended without a
// rebuild: a YAML file with the same shape at
// $XDG_CONFIG_HOME/conda-portable/portable_packages.yaml is merged on top,
// replacing the built-in list per platform/ecosystem key it names.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/zerr"

	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

//go:embed embedded/portable_packages.yaml
var defaultRules []byte

// rawBytesProvider implements koanf's Provider for in-memory bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Source implements ports.RuleSource.
type Source struct {
	logger       ports.Logger
	overridePath string
}

// NewSource creates a Source reading the default override location.
func NewSource(logger ports.Logger) *Source {
	return &Source{logger: logger, overridePath: DefaultOverridePath()}
}

// NewSourceWithPath creates a Source with a custom override path.
// An empty path disables the override entirely.
func NewSourceWithPath(logger ports.Logger, overridePath string) *Source {
	return &Source{logger: logger, overridePath: overridePath}
}

// DefaultOverridePath returns the XDG location of the user rule override.
func DefaultOverridePath() string {
	return filepath.Join(xdg.ConfigHome, domain.ConfigDirName, domain.RulesFileName)
}

// Load builds the rule table from the embedded defaults plus any override.
func (s *Source) Load() (domain.RuleTable, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultRules}, yamlparser.Parser()); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRulesParseFailed.Error())
	}

	if err := s.loadOverride(k); err != nil {
		return nil, err
	}

	table := make(domain.RuleTable, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		table[p] = domain.NewRuleSet(
			k.Strings(string(p)+".conda"),
			k.Strings(string(p)+".pip"),
		)
	}

	// Sections that don't name a recognized platform never match anything.
	// Surface them instead of silently ignoring a typo.
	for key := range k.Raw() {
		if _, err := domain.ParsePlatform(key); err != nil {
			s.logger.Warn(fmt.Sprintf("ignoring rules for unknown platform %q", key))
		}
	}

	return table, nil
}

func (s *Source) loadOverride(k *koanf.Koanf) error {
	if s.overridePath == "" {
		return nil
	}

	info, err := os.Stat(s.overridePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrRulesReadFailed.Error()), "path", s.overridePath)
	case info.IsDir():
		s.logger.Warn(fmt.Sprintf("rule override path %s is a directory, skipping", s.overridePath))
		return nil
	}

	if err := k.Load(file.Provider(s.overridePath), yamlparser.Parser()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRulesParseFailed.Error()), "path", s.overridePath)
	}

	s.logger.Info(fmt.Sprintf("loaded rule overrides from %s", s.overridePath))
	return nil
}
