package generation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SanitizeName maps a test name to a filesystem-safe token: letters,
// digits, '_' and '-' pass through, everything else becomes '_'.
func SanitizeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	return sb.String()
}

// Writer persists records as pretty-printed JSON files, one per record,
// under a per-variation-set subdirectory of the config root.
type Writer struct {
	configDir string
}

// NewWriter creates a Writer rooted at configDir.
func NewWriter(configDir string) *Writer {
	return &Writer{configDir: configDir}
}

// Write persists one record under the given variation-set directory and
// returns the file path. An existing file of the same name is
// overwritten, which is what makes a re-run idempotent.
func (w *Writer) Write(setID string, rec Record) (string, error) {
	dir := filepath.Join(w.configDir, setID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, SanitizeName(rec.TestName)+".json")

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", rec.TestName, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
