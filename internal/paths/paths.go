package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppName is used for the settings directory and config file name.
const AppName = "preflight"

// Default names of the files preflight validates.
const (
	PackageManifest = "package.json"
	CompilerConfig  = "tsconfig.json"
)

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns preflight's settings directory under ConfigHome.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// Resolve joins a checked file name onto the project directory.
// An empty dir means the working directory.
func Resolve(dir, name string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// ValidFileName reports whether name is a bare file name: non-empty, not
// "." or "..", and free of path separators and NUL bytes.
func ValidFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, '\x00') {
		return false
	}
	return true
}
