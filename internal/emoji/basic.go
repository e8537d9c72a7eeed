package emoji

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	kemoji "github.com/kyokomi/emoji/v2"
)

// variantSeparator splits a skin tone or other variant off a shortcode, as
// in "wave::skin-tone-2".
const variantSeparator = "::"

// BasicEntry is one record of the bundled emoji-datasource table.
type BasicEntry struct {
	ShortName  string   `json:"short_name"`
	ShortNames []string `json:"short_names"`
	Image      string   `json:"image"`
	Unified    string   `json:"unified"`
}

// BasicTable is the read-only table of Unicode emoji shipped with the tool,
// together with the directory holding their images.
type BasicTable struct {
	entries  []BasicEntry
	imageDir string
}

// LoadBasicTable reads an emoji-datasource JSON file.
func LoadBasicTable(tablePath, imageDir string) (*BasicTable, error) {
	data, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read basic emoji table: %w", err)
	}

	var entries []BasicEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse basic emoji table %s: %w", tablePath, err)
	}
	return NewBasicTable(entries, imageDir), nil
}

// NewBasicTable builds a table from entries. Entries without a unified
// codepoint get one from the shortcode map when it knows the name.
func NewBasicTable(entries []BasicEntry, imageDir string) *BasicTable {
	codes := kemoji.CodeMap()
	table := &BasicTable{
		entries:  make([]BasicEntry, 0, len(entries)),
		imageDir: imageDir,
	}
	for _, e := range entries {
		if len(e.ShortNames) == 0 && e.ShortName != "" {
			e.ShortNames = []string{e.ShortName}
		}
		if e.Unified == "" {
			e.Unified = unifiedFromCodeMap(codes, e.ShortNames)
		}
		table.entries = append(table.entries, e)
	}
	return table
}

func unifiedFromCodeMap(codes map[string]string, names []string) string {
	for _, name := range names {
		native, ok := codes[":"+name+":"]
		if !ok {
			continue
		}
		native = strings.TrimSpace(native)
		if native == "" {
			continue
		}
		points := make([]string, 0, len(native))
		for _, r := range native {
			points = append(points, fmt.Sprintf("%04X", r))
		}
		return strings.Join(points, "-")
	}
	return ""
}

// Len returns the number of entries.
func (t *BasicTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the table entries in table order.
func (t *BasicTable) Entries() []BasicEntry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Lookup finds the first entry whose short names contain name or, for names
// with a "::" variant suffix, the part before it.
func (t *BasicTable) Lookup(name string) (BasicEntry, bool) {
	if t == nil {
		return BasicEntry{}, false
	}

	var baseName string
	if before, _, found := strings.Cut(name, variantSeparator); found {
		baseName = before
	}

	for _, e := range t.entries {
		if slices.Contains(e.ShortNames, name) {
			return e, true
		}
		if baseName != "" && slices.Contains(e.ShortNames, baseName) {
			return e, true
		}
	}
	return BasicEntry{}, false
}

// CopyImage copies the bundled image into destDir, replacing an existing
// file of the same name.
func (t *BasicTable) CopyImage(image, destDir string) error {
	if t == nil {
		return fmt.Errorf("no basic emoji table loaded")
	}
	if image == "" || strings.ContainsAny(image, `/\`) {
		return fmt.Errorf("invalid basic emoji image name %q", image)
	}

	src, err := os.Open(filepath.Join(t.imageDir, image))
	if err != nil {
		return fmt.Errorf("failed to open bundled image: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create basic emoji directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(destDir, image))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", image, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %s: %w", image, err)
	}
	return dst.Close()
}
