package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// --- Request/Response Structs ---

type generateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateText sends one prompt to the given text model and returns the
// trimmed text of the first candidate. Exactly one attempt is made.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	c.logger.Debug("Submitting text generation request", zap.String("model", model))

	payload := generateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}

	respBody, err := c.doPostRequest(ctx, c.modelURL(model, "generateContent"), payload)
	if err != nil {
		return "", fmt.Errorf("text generation failed: %w", err)
	}

	var response generateContentResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal text generation response: %w, body: %s", err, string(respBody))
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in text generation response: %s", string(respBody))
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty text in text generation response: %s", string(respBody))
	}
	return text, nil
}
