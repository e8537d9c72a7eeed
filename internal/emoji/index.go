package emoji

import (
	"os"
	"path/filepath"
)

// Emoji is one entry of the index handed to the exporter. Custom entries
// carry no Unicode codepoint.
type Emoji struct {
	Custom  bool   `json:"custom"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Unicode string `json:"unicode,omitempty"`
}

// Index maps every known emoji name to its asset.
type Index map[string]Emoji

// IndexStats describes what went into an Index.
type IndexStats struct {
	Basic        int      // basic table entries
	Custom       int      // custom names with an asset on disk
	MissingBasic int      // basic images not present in the basic directory
	Unresolved   []string // custom names without a local asset
}

// BuildIndex expands every basic entry into one record per short name, then
// adds every custom emoji whose resolved asset exists on disk, keyed by the
// name it was listed under. Custom entries replace basic ones of the same
// name.
func BuildIndex(basic *BasicTable, paths Paths, list map[string]string) (Index, IndexStats) {
	index := make(Index)
	var stats IndexStats

	for _, e := range basic.Entries() {
		stats.Basic++
		if _, err := os.Stat(filepath.Join(paths.BasicDir, e.Image)); err != nil {
			stats.MissingBasic++
		}
		rel := paths.BasicPath(e.Image, true)
		for _, shortName := range e.ShortNames {
			index[shortName] = Emoji{
				Custom:  false,
				Name:    shortName,
				Path:    rel,
				Unicode: e.Unified,
			}
		}
	}

	for name := range list {
		finalName, err := ResolveFinalName(name, list)
		if err != nil {
			stats.Unresolved = append(stats.Unresolved, name)
			continue
		}
		rel, ok := paths.FilePath(finalName, "", true)
		if !ok {
			stats.Unresolved = append(stats.Unresolved, name)
			continue
		}
		index[name] = Emoji{
			Custom: true,
			Name:   name,
			Path:   rel,
		}
		stats.Custom++
	}
	return index, stats
}
