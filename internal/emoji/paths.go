package emoji

import (
	"os"
	"path/filepath"
)

// probeExtensions is the order in which FilePath looks for an existing asset.
var probeExtensions = []string{".png", ".jpg", ".gif"}

// Paths locates emoji assets on disk
type Paths struct {
	DataDir  string // root that index paths are relative to
	EmojiDir string // custom emoji downloads
	BasicDir string // copied basic emoji images
}

// FilePath returns the location of the custom emoji asset called name.
//
// With a non-empty ext the joined path is returned without touching the
// disk, which is what a fresh download wants. Without an extension the first
// of .png, .jpg and .gif that exists wins, and ok is false when none does.
// relative only applies to the probing form and makes the result relative
// to DataDir.
func (p Paths) FilePath(name, ext string, relative bool) (path string, ok bool) {
	if ext != "" {
		return filepath.Join(p.EmojiDir, name+ext), true
	}

	for _, e := range probeExtensions {
		candidate := filepath.Join(p.EmojiDir, name+e)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if relative {
			return p.relativeToData(candidate)
		}
		return candidate, true
	}
	return "", false
}

// BasicPath returns where the bundled image is copied to.
func (p Paths) BasicPath(image string, relative bool) string {
	path := filepath.Join(p.BasicDir, image)
	if !relative {
		return path
	}
	rel, ok := p.relativeToData(path)
	if !ok {
		return path
	}
	return rel
}

func (p Paths) relativeToData(path string) (string, bool) {
	rel, err := filepath.Rel(p.DataDir, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
