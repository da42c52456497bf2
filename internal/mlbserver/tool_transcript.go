package mlbserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_mlb/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VideoTranscriptInput struct {
	VideoID   string   `json:"video_id" jsonschema:"YouTube video id (the v= parameter, e.g. dQw4w9WgXcQ)"`
	Languages []string `json:"languages,omitempty" jsonschema:"Preferred caption languages in priority order (default: en)"`
}

type VideoTranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Available  bool   `json:"available"`
	Transcript string `json:"transcript,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func registerVideoTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_transcript",
		Description: "Fetch the plain-text transcript of a YouTube video, preferring manually written captions over auto-generated ones. Many videos have no fetchable transcript; that comes back as available=false, not an error.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoTranscriptInput) (*mcp.CallToolResult, VideoTranscriptOutput, error) {
		if input.VideoID == "" {
			return nil, VideoTranscriptOutput{}, fmt.Errorf("video_id is required")
		}

		text, err := sources.FetchTranscript(ctx, input.VideoID, input.Languages)
		if err != nil {
			slog.Info("video_transcript: unavailable",
				slog.String("id", input.VideoID), slog.Any("error", err))
			return nil, VideoTranscriptOutput{
				VideoID:   input.VideoID,
				Available: false,
				Reason:    "transcript unavailable",
			}, nil
		}
		return nil, VideoTranscriptOutput{
			VideoID:    input.VideoID,
			Available:  true,
			Transcript: text,
		}, nil
	})
}
