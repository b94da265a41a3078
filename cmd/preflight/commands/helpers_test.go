package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/preflight/internal/validator"
)

const (
	validManifest = `{
  "name": "web",
  "version": "1.0.0",
  "scripts": {"build": "vite build", "lint": "eslint .", "test": "vitest", "dev": "vite", "start": "vite preview", "deploy": "./deploy.sh"}
}`
	validTSConfig = `{
  // generated by tsc --init
  "compilerOptions": {
    "target": "ES2022",
    "module": "ESNext",
    "moduleResolution": "bundler" /* vite */
  }
}`
)

// resetFlags restores every flag variable to its default, since cobra keeps
// values between Execute calls.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	checkDir = "."
	checkFormat = string(validator.FormatText)
	settings = nil
	configLoadErr = nil
}

// execute runs the root command with args from an empty working directory
// and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)
	t.Chdir(t.TempDir())
	t.Setenv("PREFLIGHT_DEBUG", "")
	os.Unsetenv("PREFLIGHT_DEBUG")

	noColor(t)

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// project writes the given files into a new temp dir and returns it.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}
