package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countOccurrences(args []string, want string) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}

func TestBuildExtractAudio(t *testing.T) {
	args := BuildExtractAudio("clip.mp4", "out/extracted_audio.mp3", 2)

	assert.Equal(t, []string{
		"-i", "clip.mp4",
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", "2",
		"-y",
		"out/extracted_audio.mp3",
	}, args)
}

func TestBuildConvert(t *testing.T) {
	args := BuildConvert("input.mp4", "out/converted.webm", "1M", "128k")

	assert.Equal(t, 1, countOccurrences(args, "input.mp4"))
	assert.Equal(t, "input.mp4", args[1], "input path must follow -i")

	// Numeric parameters pass through literally
	assert.Contains(t, args, "1M")
	assert.Contains(t, args, "128k")

	// Overwrite policy flag precedes the output path, which comes last
	assert.Equal(t, "-y", args[len(args)-2])
	assert.Equal(t, "out/converted.webm", args[len(args)-1])
}

func TestBuildEnhance(t *testing.T) {
	args := BuildEnhance("input.mp4", "out/enhanced.mp4", "Demo Label", 1280, 720)

	assert.Equal(t, 1, countOccurrences(args, "input.mp4"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "scale=1280:720")
	assert.Contains(t, joined, "drawtext=text='Demo Label'")
	assert.Contains(t, joined, "eq=contrast=1.2:brightness=0.1")

	// Filtered video is mapped back in, audio only when present
	assert.Contains(t, args, "[v]")
	assert.Contains(t, args, "0:a?")
	assert.Contains(t, args, "-y")
}

func TestBuildMuxAudio(t *testing.T) {
	args := BuildMuxAudio("video.mp4", "audio.mp3", "out/with_audio.mp4")

	assert.Equal(t, 1, countOccurrences(args, "video.mp4"))
	assert.Equal(t, 1, countOccurrences(args, "audio.mp3"))
	assert.Equal(t, "video.mp4", args[1])
	assert.Equal(t, "audio.mp3", args[3])

	assert.Contains(t, args, "-shortest")
	assert.Equal(t, "out/with_audio.mp4", args[len(args)-1])
}
