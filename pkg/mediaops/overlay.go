package mediaops

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Overlay creates a picture-in-picture composite: the overlay video is scaled
// to a quarter of its size and placed in the bottom-right corner of the base.
func (o *Operator) Overlay(basePath, overlayPath string) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("overlay.mp4")

	if err := o.runStream("overlay", o.buildOverlay(basePath, overlayPath, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (o *Operator) buildOverlay(basePath, overlayPath, outputPath string) *ffmpeg.Stream {
	base := ffmpeg.Input(basePath)
	small := ffmpeg.Input(overlayPath).
		Filter("scale", ffmpeg.Args{"iw/4", "ih/4"})

	return o.proc.CreateOverlayFilter(base, small, "W-w-10", "H-h-10").
		Output(outputPath, ffmpeg.KwArgs{
			"c:v": "libx264",
			"c:a": "aac",
		})
}

// Watermark stamps an image into the top-right corner of a video. The audio
// track is copied untouched.
func (o *Operator) Watermark(inputPath, logoPath string) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("watermarked.mp4")

	if err := o.runStream("watermark", o.buildWatermark(inputPath, logoPath, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (o *Operator) buildWatermark(inputPath, logoPath, outputPath string) *ffmpeg.Stream {
	video := ffmpeg.Input(inputPath)
	logo := ffmpeg.Input(logoPath)

	return o.proc.CreateOverlayFilter(video, logo, "W-w-10", "10").
		Output(outputPath, ffmpeg.KwArgs{
			"c:v": "libx264",
			"c:a": "copy",
		})
}
