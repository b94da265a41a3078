package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/preflight/cmd"
)

func TestVersionCommand_Output(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "preflight version "+cmd.Version, lines[0])
	assert.Equal(t, "  commit:    "+cmd.Commit, lines[1])
	assert.Equal(t, "  built:     "+cmd.Date, lines[2])
	assert.Equal(t, "  go:        "+runtime.Version(), lines[3])
}

func TestVersionCommand_IgnoresBadConfig(t *testing.T) {
	_, _, err := execute(t, "version", "--config", "/nonexistent/preflight.yaml")
	assert.NoError(t, err)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "preflight version "+cmd.Version+"\n", stdout)
}

func TestVersionCommand_CommandMetadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}
	if versionCmd.Long == "" {
		t.Error("versionCmd.Long should not be empty")
	}
}
