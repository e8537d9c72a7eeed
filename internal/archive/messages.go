package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/slack-go/slack"
	"go.mcconachie.co/slack-archive/internal/emoji"
)

const maxLineSize = 16 << 20

// LoadMessages reads archived messages from path. A .json file holds an
// array of archive messages; a .jsonl file holds one Slack API message per
// line. A directory is read file by file in name order, other files are
// ignored.
func LoadMessages(path string) ([]emoji.ArchiveMessage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	if !info.IsDir() {
		return loadMessageFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isMessageFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	slices.Sort(files)

	var messages []emoji.ArchiveMessage
	for _, f := range files {
		msgs, err := loadMessageFile(f)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msgs...)
	}
	return messages, nil
}

func isMessageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".json" || ext == ".jsonl"
}

func loadMessageFile(path string) ([]emoji.ArchiveMessage, error) {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return loadMessageLines(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var messages []emoji.ArchiveMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return messages, nil
}

func loadMessageLines(path string) ([]emoji.ArchiveMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var messages []emoji.ArchiveMessage
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var msg slack.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("failed to decode %s line %d: %w", path, line, err)
		}
		converted, err := emoji.FromSlackMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		messages = append(messages, converted)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return messages, nil
}
