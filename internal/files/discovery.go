// Package files locates distributor report files on disk for batch
// processing.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// reportExtensions are the recognized tabular input formats.
var reportExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// IsReportFile reports whether the path has a recognized tabular extension.
func IsReportFile(path string) bool {
	return reportExtensions[strings.ToLower(filepath.Ext(path))]
}

// FindReportFiles returns the report files directly inside dir, sorted by
// name so batch order is deterministic.
func FindReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsReportFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
