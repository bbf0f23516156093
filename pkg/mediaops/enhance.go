package mediaops

import (
	"context"
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
)

// Enhance applies the scale + drawtext + eq filter chain through a directly
// invoked ffmpeg process
func (o *Operator) Enhance(ctx context.Context, inputPath, label string) (string, error) {
	runner, err := ffmpegWrap.NewRunner(o.logger, o.verbose)
	if err != nil {
		return "", err
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("enhanced.mp4")

	req := ffmpegWrap.Request{
		Name: "enhance",
		Args: ffmpegWrap.BuildEnhance(inputPath, outputPath, label,
			config.FilterWidth, config.FilterHeight),
		OutputPath: outputPath,
	}

	if res := runner.Run(ctx, req); res.Failed() {
		return "", surfaceResult(req.Name, res)
	}
	return outputPath, nil
}

// Grade applies the color-grade filter chain through the wrapper library:
// scale, frame rate, contrast/brightness, hue shift.
func (o *Operator) Grade(opts config.GradeOptions) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("graded.mp4")

	if err := o.runStream("grade", buildGrade(opts, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func buildGrade(opts config.GradeOptions, outputPath string) *ffmpeg.Stream {
	return ffmpeg.Input(opts.InputPath).
		Filter("scale", ffmpeg.Args{
			fmt.Sprintf("%d", config.FilterWidth),
			fmt.Sprintf("%d", config.FilterHeight),
		}).
		Filter("fps", ffmpeg.Args{}, ffmpeg.KwArgs{"fps": opts.FrameRate}).
		Filter("eq", ffmpeg.Args{}, ffmpeg.KwArgs{
			"contrast":   opts.Contrast,
			"brightness": opts.Brightness,
		}).
		Filter("hue", ffmpeg.Args{}, ffmpeg.KwArgs{"h": opts.HueShift}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v": "libx264",
			"crf": 23,
			"c:a": "aac",
		})
}
