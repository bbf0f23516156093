package mediaops

import (
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
)

// ExtractFrames samples a video into numbered PNG images under the frames
// subdirectory. fps is how many frames to keep per second of video.
func (o *Operator) ExtractFrames(inputPath string, fps int) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	framesDir, err := o.ensureSubdir(config.FramesSubdir)
	if err != nil {
		return "", err
	}

	outputPattern := filepath.Join(framesDir, config.FramePattern)

	if err := o.runStream("frames", buildFrames(inputPath, outputPattern, fps)); err != nil {
		return "", err
	}
	return framesDir, nil
}

func buildFrames(inputPath, outputPattern string, fps int) *ffmpeg.Stream {
	return ffmpeg.Input(inputPath).
		Filter("fps", ffmpeg.Args{}, ffmpeg.KwArgs{"fps": fps}).
		Output(outputPattern, ffmpeg.KwArgs{
			"format": "image2",
			"c:v":    "png",
		})
}

// Slideshow builds a video from an image sequence. The pattern is a glob such
// as "frames/*.png"; framerate sets how many images make up one second.
func (o *Operator) Slideshow(pattern string, framerate int) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("from_images.mp4")

	if err := o.runStream("slideshow", buildSlideshow(pattern, outputPath, framerate)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func buildSlideshow(pattern, outputPath string, framerate int) *ffmpeg.Stream {
	return ffmpeg.Input(pattern, ffmpeg.KwArgs{
		"pattern_type": "glob",
		"framerate":    framerate,
	}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"crf":     20,
		})
}
