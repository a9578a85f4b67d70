package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/envfile"
	"github.com/ShekharNarayanan/conda-portable/internal/core/domain"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports/mocks"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fieldKeys(doc *domain.EnvironmentDocument) []string {
	keys := make([]string, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeEnv(t, `name: science
channels:
  - conda-forge
  - defaults
dependencies:
  - python=3.11
  - numpy=1.26.0
  - pip
  - pip:
      - requests==2.31.0
      - rich
prefix: C:\Users\someone\miniconda3\envs\science
`)

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "science", doc.Name)
	assert.Equal(t, []string{"conda-forge", "defaults"}, doc.Channels)
	assert.Equal(t, []string{"name", "channels", "dependencies", "prefix"}, fieldKeys(doc))

	require.Len(t, doc.Dependencies, 4)
	assert.Equal(t, domain.PlainSpec("python=3.11"), doc.Dependencies[0])
	assert.Equal(t, domain.PlainSpec("numpy=1.26.0"), doc.Dependencies[1])
	assert.Equal(t, domain.PlainSpec("pip"), doc.Dependencies[2])
	assert.Equal(t, domain.PipBlock{Requirements: []string{"requests==2.31.0", "rich"}}, doc.Dependencies[3])

	// The dependencies field is the decoded slot, every other field keeps
	// its raw node.
	for _, f := range doc.Fields {
		if f.Key == domain.DependenciesKey {
			assert.Nil(t, f.Value)
		} else {
			assert.NotNil(t, f.Value, "field %q", f.Key)
		}
	}
}

func TestLoader_Load_UnmodeledEntriesStayRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeEnv(t, `dependencies:
  - python=3.11
  - 42
  -
  - pip:
      - rich
    extra: true
  - pip:
      - rich
      - 7
`)

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Dependencies, 5)

	assert.Equal(t, domain.PlainSpec("python=3.11"), doc.Dependencies[0])
	// Non-string scalars, null entries, pip blocks with extra keys and pip
	// lists with non-string members all pass through unmodeled.
	assert.IsType(t, domain.RawEntry{}, doc.Dependencies[1])
	assert.IsType(t, domain.RawEntry{}, doc.Dependencies[2])
	assert.IsType(t, domain.RawEntry{}, doc.Dependencies[3])
	assert.IsType(t, domain.RawEntry{}, doc.Dependencies[4])
}

func TestLoader_Load_NullDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeEnv(t, "name: empty\ndependencies:\n")

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Dependencies)
	assert.Equal(t, []string{"name", "dependencies"}, fieldKeys(doc))
}

func TestLoader_Load_DependenciesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeEnv(t, "dependencies:\n  - python\nname: after\n")

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "after", doc.Name)
	assert.Equal(t, []string{"dependencies", "name"}, fieldKeys(doc))
}

func TestLoader_Load_DuplicateDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := writeEnv(t, `dependencies:
  - python=3.11
dependencies:
  - numpy
`)

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)

	// First occurrence wins, the duplicate is carried through raw.
	assert.Equal(t, []domain.Dependency{domain.PlainSpec("python=3.11")}, doc.Dependencies)
	assert.Equal(t, []string{"dependencies", "dependencies"}, fieldKeys(doc))
	assert.Nil(t, doc.Fields[0].Value)
	assert.NotNil(t, doc.Fields[1].Value)
}

func TestLoader_Load_BadChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := writeEnv(t, "channels: conda-forge\ndependencies:\n  - python\n")

	doc, err := envfile.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Channels)
	assert.Equal(t, []string{"channels", "dependencies"}, fieldKeys(doc))
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		wantErr error
	}{
		{
			name:    "missing file",
			missing: true,
			wantErr: domain.ErrEnvReadFailed,
		},
		{
			name:    "invalid yaml",
			content: "name: [unclosed",
			wantErr: domain.ErrEnvParseFailed,
		},
		{
			name:    "list root",
			content: "- a\n- b\n",
			wantErr: domain.ErrEnvNotMapping,
		},
		{
			name:    "scalar root",
			content: "just a string\n",
			wantErr: domain.ErrEnvNotMapping,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: domain.ErrEnvNotMapping,
		},
		{
			name:    "no dependencies",
			content: "name: science\nchannels:\n  - defaults\n",
			wantErr: domain.ErrEnvMissingDependencies,
		},
		{
			name:    "scalar dependencies",
			content: "dependencies: python\n",
			wantErr: domain.ErrEnvBadDependencies,
		},
		{
			name:    "mapping dependencies",
			content: "dependencies:\n  python: '3.11'\n",
			wantErr: domain.ErrEnvBadDependencies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			path := filepath.Join(t.TempDir(), "environment.yml")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			_, err := envfile.NewLoader(mockLogger).Load(path)
			require.Error(t, err)
			// Use string check for robustness if ErrorIs fails with zerr wrapping
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
