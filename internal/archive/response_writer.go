package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileRef points at a file written by FileResponseWriter.
type FileRef struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Bytes   int64  `json:"bytes"`
	Entries int    `json:"entries"`
}

// FileResponseWriter writes JSON documents to files under a directory.
type FileResponseWriter struct {
	dir string
}

// NewFileResponseWriter creates a response writer that stores files in the given directory
func NewFileResponseWriter(dir string) *FileResponseWriter {
	return &FileResponseWriter{dir: dir}
}

// Dir returns the directory where files are written
func (w *FileResponseWriter) Dir() string {
	return w.dir
}

// WriteJSON writes data to a timestamped file <name>-<nanos>.json.
func (w *FileResponseWriter) WriteJSON(name string, data any, entries int) (FileRef, error) {
	filename := fmt.Sprintf("%s-%d.json", name, time.Now().UnixNano())
	return w.writeJSONFile(filepath.Join(w.dir, filename), data, entries)
}

// WriteJSONNamed writes data to path, replacing an existing file. A relative
// path is resolved against the writer's directory.
func (w *FileResponseWriter) WriteJSONNamed(path string, data any, entries int) (FileRef, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.dir, path)
	}
	return w.writeJSONFile(path, data, entries)
}

func (w *FileResponseWriter) writeJSONFile(filePath string, data any, entries int) (FileRef, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return FileRef{}, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return FileRef{}, fmt.Errorf("failed to write data: %w", err)
	}

	fi, err := file.Stat()
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to stat file: %w", err)
	}

	return FileRef{
		Path:    filePath,
		Name:    filepath.Base(filePath),
		Bytes:   fi.Size(),
		Entries: entries,
	}, nil
}
