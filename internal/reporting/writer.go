package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"tailwagg-analytics/internal/datasets"
)

// WriteAll renders every dataset and writes it under outputDir, creating
// the directory if needed. The returned paths are in no particular order.
func WriteAll(outputDir string, out *datasets.Output) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	files := Render(out)
	paths := make([]string, 0, len(files))
	for name, content := range files {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
