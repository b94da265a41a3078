package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/preflight/internal/errors"
	"github.com/thoreinstein/preflight/internal/logging"
)

// isolate resets viper and moves the working directory to an empty temp dir
// so no stray preflight.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "preflight.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	assert.Equal(t, "package.json", viper.GetString("package.file"))
	assert.Equal(t, []string{"build", "lint"}, viper.GetStringSlice("package.required_scripts"))
	assert.Equal(t, []string{"target", "module", "moduleResolution"}, viper.GetStringSlice("tsconfig.compiler_options"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, Source())
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "package:\n  required_scripts: [build, typecheck]\n")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "typecheck"}, cfg.Package.RequiredScripts)
	assert.Equal(t, []string{"name", "version", "scripts"}, cfg.Package.RequiredFields, "unset lists keep defaults")
	assert.Equal(t, "tsconfig.json", cfg.TSConfig.File)
	assert.NotEmpty(t, Source())
}

func TestLoad_WithConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
package:
  file: manifest.json
  optional_scripts: []
tsconfig:
  file: tsconfig.base.json
  compiler_options: [strict]
`)
	Init()

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "manifest.json", cfg.Package.File)
	assert.Empty(t, cfg.Package.OptionalScripts)
	assert.Equal(t, "tsconfig.base.json", cfg.TSConfig.File)
	assert.Equal(t, []string{"strict"}, cfg.TSConfig.CompilerOptions)
	assert.Equal(t, []string{"compilerOptions"}, cfg.TSConfig.RequiredFields)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("PREFLIGHT_PACKAGE_REQUIRED_SCRIPTS", "build,lint,typecheck")
	t.Setenv("PREFLIGHT_TSCONFIG_FILE", "tsconfig.app.json")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "lint", "typecheck"}, cfg.Package.RequiredScripts)
	assert.Equal(t, "tsconfig.app.json", cfg.TSConfig.File)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "package: [unclosed\n")
	Init()

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "file with directory",
			content: "package:\n  file: web/package.json\n",
			wantErr: ErrInvalidFileName,
			wantMsg: `package.file: invalid file name: "web/package.json"`,
		},
		{
			name:    "duplicate compiler option",
			content: "tsconfig:\n  compiler_options: [target, target]\n",
			wantErr: ErrDuplicateName,
			wantMsg: `tsconfig.compiler_options: duplicate name: "target"`,
		},
		{
			name:    "blank script",
			content: "package:\n  required_scripts: [build, \" \"]\n",
			wantErr: ErrEmptyName,
			wantMsg: `package.required_scripts: empty name`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, t.TempDir(), tt.content)
			Init()

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "validating config: ")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	isolate(t)
	fileA := writeConfig(t, t.TempDir(), "package:\n  file: a.json\n")

	Init()
	cfg, err := Load(fileA)
	require.NoError(t, err)
	require.Equal(t, "a.json", cfg.Package.File)

	Init()
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "package.json", cfg.Package.File)
	assert.NotEqual(t, fileA, Source())
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Package.RequiredScripts = []string{"ci"}
	logger := logging.NewDiscard()

	m := cfg.ManifestOptions(logger)
	assert.Equal(t, []string{"ci"}, m.RequiredScripts)
	assert.Equal(t, []string{"name", "version", "scripts"}, m.RequiredFields)
	assert.Same(t, logger, m.Logger)

	ts := cfg.TSConfigOptions(logger)
	assert.Equal(t, []string{"compilerOptions"}, ts.RequiredFields)
	assert.Equal(t, []string{"target", "module", "moduleResolution"}, ts.CompilerOptions)
}
