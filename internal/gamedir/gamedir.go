// Package gamedir resolves where the game keeps its per-user data, the same
// directory the vanilla launcher uses.
package gamedir

import (
	"os"
	"path/filepath"
	"runtime"
)

// ClientIDFileName is the vanilla launcher's client identifier file.
const ClientIDFileName = "clientId.txt"

// Dir returns the game data directory for the current OS and user.
func Dir() string {
	return dirFor(runtime.GOOS, os.Getenv)
}

// ClientIDFile returns the path of the client identifier file inside dir.
func ClientIDFile(dir string) string {
	return filepath.Join(dir, ClientIDFileName)
}

func dirFor(goos string, getenv func(string) string) string {
	home := getenv("HOME")

	switch goos {
	case "windows":
		base := getenv("APPDATA")
		if base == "" {
			base = filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(base, ".minecraft")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(home, ".minecraft")
	}
}
