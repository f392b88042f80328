package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveDataPath determines the actual data directory based on safety rules.
// With forceTemp, the path is re-rooted into a temporary directory so demos
// and tests never pollute the user's real journal.
func ResolveDataPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	// If the path is already inside the system temp directory (e.g. created
	// by t.TempDir() or explicit intent), trust it as is.
	cleanUserPath := filepath.Clean(userPath)
	tempRoot := os.TempDir()

	rel, err := filepath.Rel(tempRoot, cleanUserPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return cleanUserPath
	}

	// Otherwise, force it into our namespaced dev directory.
	subName := "default"
	if userPath != "" && userPath != "." && userPath != "./" {
		base := filepath.Base(userPath)
		if base != "." && base != string(os.PathSeparator) {
			subName = base
		}
	}

	return filepath.Join(os.TempDir(), "daygo-dev", subName)
}
