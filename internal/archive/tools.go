package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mcconachie.co/slack-archive/internal/emoji"
)

// FindEmojiInput defines input for scanning archived messages
type FindEmojiInput struct {
	Path string `json:"path" jsonschema:"Archived messages: a .json array file, a .jsonl export or a directory of them"`
}

// FindEmojiOutput contains a summary and file reference (to save tokens)
type FindEmojiOutput struct {
	File       FileRef `json:"file"`
	Messages   int     `json:"messages"`
	TotalCount int     `json:"total_count"`
	FirstEmoji string  `json:"first_emoji,omitempty"`
	LastEmoji  string  `json:"last_emoji,omitempty"`
}

// FindEmoji lists every emoji name used in the archived messages.
// The sorted list is written to a response file.
func (a *Archiver) FindEmoji(ctx context.Context, req *mcp.CallToolRequest, input FindEmojiInput) (*mcp.CallToolResult, FindEmojiOutput, error) {
	messages, err := loadInput(input.Path)
	if err != nil {
		return nil, FindEmojiOutput{}, err
	}

	names := emoji.FindEmojis(messages)
	fileRef, err := a.responses.WriteJSON("emoji", names, len(names))
	if err != nil {
		return nil, FindEmojiOutput{}, fmt.Errorf("failed to write response: %w", err)
	}

	output := FindEmojiOutput{
		File:       fileRef,
		Messages:   len(messages),
		TotalCount: len(names),
	}
	if len(names) > 0 {
		output.FirstEmoji = names[0]
		output.LastEmoji = names[len(names)-1]
	}
	return nil, output, nil
}

// DownloadEmojiInput defines input for archiving the emoji of messages
type DownloadEmojiInput struct {
	Path string `json:"path" jsonschema:"Archived messages: a .json array file, a .jsonl export or a directory of them"`
}

// FailureInfo describes one emoji that could not be archived
type FailureInfo struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// DownloadEmojiOutput reports an emoji archival run
type DownloadEmojiOutput struct {
	RunID      string        `json:"run_id"`
	Summary    string        `json:"summary"`
	Total      int           `json:"total"`
	Downloaded int           `json:"downloaded"`
	Copied     int           `json:"copied"`
	Failures   []FailureInfo `json:"failures,omitempty"`
	Index      FileRef       `json:"index"`
}

// DownloadEmoji downloads the custom emoji and copies the basic emoji used
// in the archived messages, then rewrites the emoji index.
func (a *Archiver) DownloadEmoji(ctx context.Context, req *mcp.CallToolRequest, input DownloadEmojiInput) (*mcp.CallToolResult, DownloadEmojiOutput, error) {
	messages, err := loadInput(input.Path)
	if err != nil {
		return nil, DownloadEmojiOutput{}, err
	}

	report, err := a.ArchiveEmoji(ctx, messages)
	if err != nil {
		return nil, DownloadEmojiOutput{}, err
	}

	output := DownloadEmojiOutput{
		RunID:      report.RunID,
		Summary:    report.Summary,
		Total:      report.Result.Total,
		Downloaded: report.Result.Downloaded,
		Copied:     report.Result.Copied,
		Index:      report.File,
	}
	for _, f := range report.Result.Failures {
		output.Failures = append(output.Failures, FailureInfo{
			Name:  f.Name,
			Kind:  string(f.Kind),
			Error: f.Err.Error(),
		})
	}
	return nil, output, nil
}

// BuildEmojiIndexInput is empty; the index is rebuilt from the configured directories.
type BuildEmojiIndexInput struct{}

// BuildEmojiIndexOutput reports a rebuilt index
type BuildEmojiIndexOutput struct {
	RunID    string   `json:"run_id"`
	Index    FileRef  `json:"index"`
	Basic    int      `json:"basic"`
	Custom   int      `json:"custom"`
	Stored   bool     `json:"stored"`
	Warnings []string `json:"warnings,omitempty"`
}

// BuildEmojiIndex rebuilds the emoji index from the assets on disk.
func (a *Archiver) BuildEmojiIndex(ctx context.Context, req *mcp.CallToolRequest, input BuildEmojiIndexInput) (*mcp.CallToolResult, BuildEmojiIndexOutput, error) {
	report, err := a.RebuildIndex(ctx)
	if err != nil {
		return nil, BuildEmojiIndexOutput{}, err
	}
	return nil, BuildEmojiIndexOutput{
		RunID:    report.RunID,
		Index:    report.File,
		Basic:    report.Basic,
		Custom:   report.Custom,
		Stored:   report.Stored,
		Warnings: report.Warnings,
	}, nil
}

// DownloadTeamIconsInput is empty; the icons of the token's workspace are fetched.
type DownloadTeamIconsInput struct{}

// TeamIconInfo describes one downloaded icon
type TeamIconInfo struct {
	URL          string `json:"url"`
	RelativePath string `json:"relative_path"`
	Small        bool   `json:"small"`
	Error        string `json:"error,omitempty"`
}

// DownloadTeamIconsOutput lists the team icons
type DownloadTeamIconsOutput struct {
	Icons []TeamIconInfo `json:"icons"`
}

// DownloadTeamIcons stores the workspace icons in the output directory.
// A failed variant is reported in its entry; the call fails only when
// nothing could be downloaded.
func (a *Archiver) DownloadTeamIcons(ctx context.Context, req *mcp.CallToolRequest, input DownloadTeamIconsInput) (*mcp.CallToolResult, DownloadTeamIconsOutput, error) {
	results, err := a.ArchiveTeamIcons(ctx)

	output := DownloadTeamIconsOutput{Icons: make([]TeamIconInfo, 0, len(results))}
	succeeded := 0
	for _, r := range results {
		info := TeamIconInfo{
			URL:          r.Icon.URL,
			RelativePath: r.Icon.RelativePath,
			Small:        r.Icon.Small,
		}
		if r.Err != nil {
			info.Error = r.Err.Error()
		} else {
			succeeded++
		}
		output.Icons = append(output.Icons, info)
	}

	if err != nil && succeeded == 0 {
		return nil, DownloadTeamIconsOutput{}, err
	}
	return nil, output, nil
}

func loadInput(path string) ([]emoji.ArchiveMessage, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	return LoadMessages(path)
}
