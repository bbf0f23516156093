package mediaops

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
)

// Trim cuts a section out of a video using stream copy, so no re-encoding
// takes place. Start and Duration are passed to the tool as-is.
func (o *Operator) Trim(opts config.TrimOptions) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("trimmed.mp4")

	if err := o.runStream("trim", buildTrim(opts, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func buildTrim(opts config.TrimOptions, outputPath string) *ffmpeg.Stream {
	return ffmpeg.Input(opts.InputPath, ffmpeg.KwArgs{
		"ss": opts.Start,
		"t":  opts.Duration,
	}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v": "copy",
			"c:a": "copy",
		})
}
