package emoji

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestPaths(t *testing.T) Paths {
	t.Helper()
	dataDir := t.TempDir()
	p := Paths{
		DataDir:  dataDir,
		EmojiDir: filepath.Join(dataDir, "emojis"),
		BasicDir: filepath.Join(dataDir, "emojis-basic"),
	}
	for _, dir := range []string{p.EmojiDir, p.BasicDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestFilePath_WithExtension(t *testing.T) {
	p := newTestPaths(t)

	got, ok := p.FilePath("party", ".gif", false)
	if !ok {
		t.Fatal("expected ok for explicit extension")
	}
	want := filepath.Join(p.EmojiDir, "party.gif")
	if got != want {
		t.Errorf("path: got %q, want %q", got, want)
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Errorf("expected no file to be created, stat err: %v", err)
	}
}

func TestFilePath_ProbesExtensions(t *testing.T) {
	p := newTestPaths(t)
	writeFile(t, filepath.Join(p.EmojiDir, "foo.png"), "png")

	got, ok := p.FilePath("foo", "", true)
	if !ok {
		t.Fatal("expected foo.png to be found")
	}
	if got != "emojis/foo.png" {
		t.Errorf("relative path: got %q, want %q", got, "emojis/foo.png")
	}

	abs, ok := p.FilePath("foo", "", false)
	if !ok {
		t.Fatal("expected foo.png to be found")
	}
	if abs != filepath.Join(p.EmojiDir, "foo.png") {
		t.Errorf("absolute path: got %q", abs)
	}
}

func TestFilePath_ProbeOrder(t *testing.T) {
	p := newTestPaths(t)
	writeFile(t, filepath.Join(p.EmojiDir, "bar.gif"), "gif")
	writeFile(t, filepath.Join(p.EmojiDir, "bar.jpg"), "jpg")

	got, ok := p.FilePath("bar", "", true)
	if !ok {
		t.Fatal("expected bar to be found")
	}
	if got != "emojis/bar.jpg" {
		t.Errorf("path: got %q, want %q", got, "emojis/bar.jpg")
	}
}

func TestFilePath_Missing(t *testing.T) {
	p := newTestPaths(t)

	got, ok := p.FilePath("nope", "", true)
	if ok {
		t.Errorf("expected missing asset, got %q", got)
	}
}

func TestBasicPath(t *testing.T) {
	p := newTestPaths(t)

	if got := p.BasicPath("1f604.png", true); got != "emojis-basic/1f604.png" {
		t.Errorf("relative: got %q", got)
	}
	if got := p.BasicPath("1f604.png", false); got != filepath.Join(p.BasicDir, "1f604.png") {
		t.Errorf("absolute: got %q", got)
	}
}
