package bot

import (
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SBKofficial/monster-maker/pkg/gemini"
)

func TestNormalizePNG_PassthroughForPNG(t *testing.T) {
	artifact := pngArtifact(t)
	reader, err := normalizePNG(artifact)
	require.NoError(t, err)
	require.EqualValues(t, len(artifact.Data), reader.Len(), "reader must be positioned at the start")
}

func TestNormalizePNG_TranscodesJPEG(t *testing.T) {
	reader, err := normalizePNG(jpegArtifact(t))
	require.NoError(t, err)

	img, err := png.Decode(reader)
	require.NoError(t, err, "output must be valid PNG")
	require.Equal(t, 2, img.Bounds().Dx())
}

func TestNormalizePNG_CorruptData(t *testing.T) {
	_, err := normalizePNG(&gemini.ImageArtifact{Data: []byte("garbage"), MimeType: "image/jpeg"})
	require.Error(t, err)
}
