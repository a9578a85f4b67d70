package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/rules"
	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports/mocks"
)

func TestSource_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	source := rules.NewSourceWithPath(mockLogger, "")

	table, err := source.Load()
	require.NoError(t, err)

	windows := table.Lookup(domain.PlatformWindows)
	assert.True(t, windows.ContainsConda("vc14_runtime"))
	assert.True(t, windows.ContainsConda("vs2015_runtime=14.29.30133"))
	assert.True(t, windows.ContainsPip("pywin32"))
	assert.True(t, windows.ContainsPip("windows-curses==2.3.1"))
	assert.False(t, windows.ContainsConda("numpy"))

	linux := table.Lookup(domain.PlatformLinux)
	assert.True(t, linux.ContainsConda("libgcc-ng"))
	assert.True(t, linux.ContainsConda("ld_impl_linux-64=2.40"))
	assert.False(t, linux.ContainsPip("pywin32"))

	macos := table.Lookup(domain.PlatformMacOS)
	assert.True(t, macos.ContainsConda("appnope"))
	assert.True(t, macos.ContainsConda("libcxx"))
	assert.True(t, macos.ContainsPip("appnope"))
}

func TestSource_Load_OverrideReplacesSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	overridePath := writeOverride(t, `
Windows:
  conda:
    - mycorp-win-driver
    - vc
`)

	source := rules.NewSourceWithPath(mockLogger, overridePath)

	table, err := source.Load()
	require.NoError(t, err)

	// The override owns the whole Windows.conda list now.
	windows := table.Lookup(domain.PlatformWindows)
	assert.True(t, windows.ContainsConda("mycorp-win-driver"))
	assert.True(t, windows.ContainsConda("vc"))
	assert.False(t, windows.ContainsConda("vc14_runtime"))

	// Keys the override does not name keep their built-in lists.
	assert.True(t, windows.ContainsPip("pywin32"))
	assert.True(t, table.Lookup(domain.PlatformLinux).ContainsConda("libgcc-ng"))
	assert.True(t, table.Lookup(domain.PlatformMacOS).ContainsPip("appnope"))
}

func TestSource_Load_OverrideMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	source := rules.NewSourceWithPath(mockLogger, filepath.Join(t.TempDir(), "nope.yaml"))

	table, err := source.Load()
	require.NoError(t, err)
	assert.True(t, table.Lookup(domain.PlatformWindows).ContainsConda("vc14_runtime"))
}

func TestSource_Load_OverrideBadYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	overridePath := writeOverride(t, "Windows: [not: {a valid")

	source := rules.NewSourceWithPath(mockLogger, overridePath)

	_, err := source.Load()
	require.Error(t, err)
	// Use string check for robustness if ErrorIs fails with zerr wrapping
	require.ErrorContains(t, err, domain.ErrRulesParseFailed.Error())
}

func TestSource_Load_OverrideUnknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	overridePath := writeOverride(t, `
Amiga:
  conda:
    - guru-meditation
`)

	source := rules.NewSourceWithPath(mockLogger, overridePath)

	table, err := source.Load()
	require.NoError(t, err)

	// The known platforms still resolve, the stray section is dropped.
	assert.Len(t, table, len(domain.Platforms()))
	assert.True(t, table.Lookup(domain.PlatformWindows).ContainsConda("vc14_runtime"))
}

func TestSource_Load_OverrideIsDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	source := rules.NewSourceWithPath(mockLogger, t.TempDir())

	table, err := source.Load()
	require.NoError(t, err)
	assert.True(t, table.Lookup(domain.PlatformLinux).ContainsConda("libstdcxx-ng"))
}

func TestDefaultOverridePath(t *testing.T) {
	path := rules.DefaultOverridePath()
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(domain.ConfigDirName, domain.RulesFileName), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func writeOverride(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portable_packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
