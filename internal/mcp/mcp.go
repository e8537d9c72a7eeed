package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mcconachie.co/slack-archive/internal/archive"
	slackclient "go.mcconachie.co/slack-archive/internal/slack"
	"go.uber.org/zap"
)

// errorWrappingHandler wraps a ToolHandler to provide enhanced error messages
type errorWrappingHandler struct {
	handler ToolHandler
	logger  *zap.Logger
}

func (h *errorWrappingHandler) FindEmoji(ctx context.Context, req *mcp.CallToolRequest, input archive.FindEmojiInput) (*mcp.CallToolResult, archive.FindEmojiOutput, error) {
	result, output, err := h.handler.FindEmoji(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "find_emoji", err)
}

func (h *errorWrappingHandler) DownloadEmoji(ctx context.Context, req *mcp.CallToolRequest, input archive.DownloadEmojiInput) (*mcp.CallToolResult, archive.DownloadEmojiOutput, error) {
	result, output, err := h.handler.DownloadEmoji(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "download_emoji", err)
}

func (h *errorWrappingHandler) BuildEmojiIndex(ctx context.Context, req *mcp.CallToolRequest, input archive.BuildEmojiIndexInput) (*mcp.CallToolResult, archive.BuildEmojiIndexOutput, error) {
	result, output, err := h.handler.BuildEmojiIndex(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "build_emoji_index", err)
}

func (h *errorWrappingHandler) DownloadTeamIcons(ctx context.Context, req *mcp.CallToolRequest, input archive.DownloadTeamIconsInput) (*mcp.CallToolResult, archive.DownloadTeamIconsOutput, error) {
	result, output, err := h.handler.DownloadTeamIcons(ctx, req, input)
	return result, output, slackclient.WrapError(h.logger, "download_team_icons", err)
}

// ToolHandler defines the interface for the archive tool operations
//
//go:generate go tool mockgen -source=$GOFILE -destination=mcp_mocks.go -package=mcp
type ToolHandler interface {
	FindEmoji(ctx context.Context, req *mcp.CallToolRequest, input archive.FindEmojiInput) (*mcp.CallToolResult, archive.FindEmojiOutput, error)
	DownloadEmoji(ctx context.Context, req *mcp.CallToolRequest, input archive.DownloadEmojiInput) (*mcp.CallToolResult, archive.DownloadEmojiOutput, error)
	BuildEmojiIndex(ctx context.Context, req *mcp.CallToolRequest, input archive.BuildEmojiIndexInput) (*mcp.CallToolResult, archive.BuildEmojiIndexOutput, error)
	DownloadTeamIcons(ctx context.Context, req *mcp.CallToolRequest, input archive.DownloadTeamIconsInput) (*mcp.CallToolResult, archive.DownloadTeamIconsOutput, error)
}

// CreateServer creates an MCP server with all archive tools registered
func CreateServer(logger *zap.Logger, handler ToolHandler, version string) *mcp.Server {
	logger.Info("Starting MCP server")
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "slack-archive",
			Version: version,
		},
		nil,
	)

	// Wrap handler to provide enhanced error messages for auth failures
	wrappedHandler := &errorWrappingHandler{handler: handler, logger: logger}
	registerTools(server, wrappedHandler)
	logger.Info("Slack archive server initialized, starting transport")
	return server
}

// registerTools registers all archive tools with the MCP server
func registerTools(server *mcp.Server, handler ToolHandler) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_find_emoji",
		Description: "List every emoji used in archived Slack messages (reactions, rich text and thread replies). The sorted names are written to a file.",
	}, handler.FindEmoji)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_download_emoji",
		Description: "Archive the emoji used in archived Slack messages: download custom workspace emoji, copy bundled Unicode emoji and rewrite the emoji index. Returns counts and per-emoji failures.",
	}, handler.DownloadEmoji)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_build_emoji_index",
		Description: "Rebuild the emoji index from the emoji already stored in the archive, without downloading anything.",
	}, handler.BuildEmojiIndex)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "slack_download_team_icons",
		Description: "Download the workspace icon in full (230px) and small (44px) size into the archive output directory.",
	}, handler.DownloadTeamIcons)
}
