package bot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // the image model may reply with JPEG artifacts

	"github.com/SBKofficial/monster-maker/pkg/gemini"
)

// normalizePNG turns an image artifact into PNG bytes in a reader
// positioned at the start, ready for upload. Artifacts that already are PNG
// pass through untouched; anything else is transcoded.
func normalizePNG(artifact *gemini.ImageArtifact) (*bytes.Reader, error) {
	if artifact.MimeType == "image/png" {
		return bytes.NewReader(artifact.Data), nil
	}

	img, _, err := image.Decode(bytes.NewReader(artifact.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s artifact: %w", artifact.MimeType, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}
