package mediaops

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
)

// CreateGIF renders a section of a video as an animated GIF, downsampled to
// 10 fps and 480px wide with the height following the aspect ratio. A zero
// duration means the section runs to the end of the clip; the clip length is
// resolved by probing the input.
func (o *Operator) CreateGIF(opts config.GifOptions) (string, error) {
	if opts.Duration <= 0 {
		meta, err := o.proc.GetVideoMetadata(opts.InputPath)
		if err != nil {
			return "", err
		}
		opts.Duration = remainderAfter(meta.Duration, opts.Start)
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("output.gif")

	if err := o.runStream("gif", buildGIF(opts, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

// remainderAfter returns the clip time left after the start offset. A start
// at or beyond the end yields a zero window and the tool rejects it itself.
func remainderAfter(total, start float64) float64 {
	if start >= total {
		return 0
	}
	return total - start
}

func buildGIF(opts config.GifOptions, outputPath string) *ffmpeg.Stream {
	return ffmpeg.Input(opts.InputPath, ffmpeg.KwArgs{
		"ss": opts.Start,
		"t":  opts.Duration,
	}).
		Filter("fps", ffmpeg.Args{}, ffmpeg.KwArgs{"fps": config.GifFrameRate}).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d", config.GifWidth), "-1"}).
		Output(outputPath, ffmpeg.KwArgs{
			"format": "gif",
		})
}
