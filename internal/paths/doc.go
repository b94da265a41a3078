// Package paths names the files preflight checks and the directories it
// reads its own settings from.
//
// Checked files are resolved relative to a project directory (the working
// directory by default). preflight's settings directory follows the XDG
// Base Directory specification via github.com/adrg/xdg:
//
//	Linux:   ~/.config/preflight
//	macOS:   ~/Library/Application Support/preflight
//	Windows: %LOCALAPPDATA%\preflight
package paths
