package locate

import (
	"os"
	"path/filepath"
	"strings"
)

// Video finds the first file in dir whose name contains pattern
// case-insensitively and whose extension equals ext case-insensitively.
// The scan is non-recursive. Which file wins when several match is
// filesystem-dependent; callers must not rely on a particular pick.
// A missing match is reported via the bool, not an error.
func Video(dir, pattern, ext string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, err
	}

	pattern = strings.ToLower(pattern)
	ext = strings.ToLower(ext)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.Contains(strings.ToLower(name), pattern) {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ext {
			continue
		}
		return name, true, nil
	}
	return "", false, nil
}
