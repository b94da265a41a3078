package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Fatal("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir_FollowsXDG(t *testing.T) {
	// Registered first so it runs after the env var is restored.
	t.Cleanup(xdg.Reload)

	custom := filepath.Join(t.TempDir(), "config")
	t.Setenv("XDG_CONFIG_HOME", custom)
	xdg.Reload()

	want := filepath.Join(custom, AppName)
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(ConfigDir(), AppName) {
		t.Errorf("ConfigDir() = %q, want suffix %q", ConfigDir(), AppName)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{"empty dir", "", PackageManifest, "package.json"},
		{"dot dir", ".", CompilerConfig, "tsconfig.json"},
		{"relative dir", "web", PackageManifest, filepath.Join("web", "package.json")},
		{"cleans path", "web/../app", CompilerConfig, filepath.Join("app", "tsconfig.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.dir, tt.file); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.dir, tt.file, got, tt.want)
			}
		})
	}
}

func TestValidFileName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"package.json", true},
		{"tsconfig.build.json", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../package.json", false},
		{`sub\tsconfig.json`, false},
		{"bad\x00name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidFileName(tt.name); got != tt.want {
				t.Errorf("ValidFileName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
