package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

const summaryPrompt = `You are a baseball analyst. In 2-3 plain sentences, summarize what the
sources below say about the %s right now. No markdown, no bullet points.

Headlines:
%s

Recent video titles:
%s`

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// LLMEnabled reports whether a summarizer client is configured.
func LLMEnabled() bool {
	return cfg.LLMClient != nil
}

// SummarizeIntel asks the LLM for a short narrative over collected headlines
// and video titles. Callers treat an error as "no summary", never as fatal.
func SummarizeIntel(ctx context.Context, teamName string, headlines, videoTitles []string) (string, error) {
	if cfg.LLMClient == nil {
		return "", fmt.Errorf("llm client not configured")
	}
	IncrLLMCalls()

	prompt := fmt.Sprintf(summaryPrompt, teamName,
		"- "+strings.Join(headlines, "\n- "),
		"- "+strings.Join(videoTitles, "\n- "))

	raw, err := cfg.LLMClient.Complete(ctx, "", prompt,
		llm.WithChatTemperature(0.2),
		llm.WithChatMaxTokens(300),
	)
	if err != nil {
		IncrLLMErrors()
		return "", err
	}
	return stripFences(raw), nil
}
