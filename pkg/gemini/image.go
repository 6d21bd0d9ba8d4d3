package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ImageArtifact is one decoded image returned by an image model.
type ImageArtifact struct {
	Data     []byte
	MimeType string
}

// --- Request/Response Structs ---

type predictRequest struct {
	Instances  []predictInstance  `json:"instances"`
	Parameters *predictParameters `json:"parameters,omitempty"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount int    `json:"sampleCount,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type predictResponse struct {
	Predictions []prediction `json:"predictions"`
}

type prediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType,omitempty"`
}

// GenerateImage asks the given image model for a single square artifact and
// returns the first prediction's decoded bytes. Exactly one attempt is made.
func (c *Client) GenerateImage(ctx context.Context, model, prompt string) (*ImageArtifact, error) {
	c.logger.Debug("Submitting image generation request", zap.String("model", model))

	payload := predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: &predictParameters{
			SampleCount: 1,
			AspectRatio: "1:1",
		},
	}

	respBody, err := c.doPostRequest(ctx, c.modelURL(model, "predict"), payload)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	var response predictResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image generation response: %w", err)
	}

	if len(response.Predictions) == 0 {
		return nil, fmt.Errorf("no predictions in image generation response")
	}

	first := response.Predictions[0]
	if first.BytesBase64Encoded == "" {
		return nil, fmt.Errorf("image generation response contains no image data")
	}

	data, err := base64.StdEncoding.DecodeString(first.BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	mimeType := first.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &ImageArtifact{Data: data, MimeType: mimeType}, nil
}
