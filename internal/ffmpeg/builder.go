package ffmpeg

import (
	"fmt"

	"github.com/clipforge/mediakit/internal/config"
)

// The builders below assemble complete argument lists for direct invocation
// through Runner. Argument order follows the ffmpeg CLI grammar: input flags,
// input, stream/codec flags, the overwrite policy flag, then the output path.
// Every builder appends -y unconditionally.

// BuildConvert assembles the basic WebM conversion arguments
func BuildConvert(inputPath, outputPath, videoBitrate, audioBitrate string) []string {
	return []string{
		"-i", inputPath,
		"-c:v", "libvpx-vp9",
		"-c:a", "libopus",
		"-b:v", videoBitrate,
		"-b:a", audioBitrate,
		"-y",
		outputPath,
	}
}

// BuildExtractAudio assembles the audio extraction arguments. Quality is the
// libmp3lame VBR level (0-9, lower is better).
func BuildExtractAudio(inputPath, outputPath string, quality int) []string {
	return []string{
		"-i", inputPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", fmt.Sprintf("%d", quality),
		"-y",
		outputPath,
	}
}

// BuildEnhance assembles a filter_complex chain that scales the video, draws
// a labeled text box, and adjusts contrast and brightness. Audio is mapped
// through only when present (0:a?).
func BuildEnhance(inputPath, outputPath, label string, width, height int) []string {
	filterComplex := fmt.Sprintf(
		"[0:v]scale=%d:%d,"+
			"drawtext=text='%s':fontsize=%s:fontcolor=%s:"+
			"x=(w-text_w)/2:y=50:box=1:boxcolor=%s:boxborderw=%s,"+
			"eq=contrast=1.2:brightness=0.1[v]",
		width, height,
		label, config.TextSize, config.TextColor,
		config.TextBoxColor, config.TextBoxWidth,
	)

	return []string{
		"-i", inputPath,
		"-filter_complex", filterComplex,
		"-map", "[v]",
		"-map", "0:a?",
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
		"-c:a", "aac",
		"-y",
		outputPath,
	}
}

// BuildMuxAudio assembles arguments that pair the video stream of the first
// input with the audio stream of the second. The video stream is copied;
// -shortest ends the output when the shorter of the two streams ends.
func BuildMuxAudio(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		"-y",
		outputPath,
	}
}
