package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCodecSettings(t *testing.T) {
	webm := GetCodecSettings("webm")
	assert.Equal(t, "libvpx-vp9", webm.VideoCodec)
	assert.Equal(t, "libopus", webm.AudioCodec)
	assert.Equal(t, "1M", webm.VideoBitrate)
	assert.Equal(t, "128k", webm.AudioBitrate)
	assert.Equal(t, ".webm", webm.FileExtension)

	mp4 := GetCodecSettings("mp4")
	assert.Equal(t, "libx264", mp4.VideoCodec)
	assert.Equal(t, "aac", mp4.AudioCodec)
	assert.Equal(t, "medium", mp4.Preset)

	// Unknown formats fall back to WebM
	fallback := GetCodecSettings("mkv")
	assert.Equal(t, "libvpx-vp9", fallback.VideoCodec)
}

func TestCodecSettingsOutputArgs(t *testing.T) {
	args := GetCodecSettings("mp4").OutputArgs()
	assert.Equal(t, "libx264", args["c:v"])
	assert.Equal(t, "aac", args["c:a"])
	assert.Equal(t, "2M", args["b:v"])
	assert.Equal(t, "192k", args["b:a"])
	assert.Equal(t, "medium", args["preset"])
	assert.Equal(t, "mp4", args["format"])

	// WebM carries no encoder preset and must not emit an empty one
	_, ok := GetCodecSettings("webm").OutputArgs()["preset"]
	assert.False(t, ok)
}

func TestGetSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"mp4", "webm"}, GetSupportedFormats())
}

func TestGetVideoMetadata(t *testing.T) {
	fakeToolDir(t, map[string]string{
		"ffprobe": "#!/bin/sh\n/bin/cat <<'PROBE'\n" + sampleProbe + "\nPROBE\n",
	})

	meta, err := NewProcessor().GetVideoMetadata("in.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 12.345, meta.Duration, 0.001)
	assert.Equal(t, 1920, meta.Width)
	assert.Equal(t, 1080, meta.Height)
	assert.Equal(t, "h264", meta.Codec)
	assert.InDelta(t, 29.97, meta.FrameRate, 0.01)
}
