package mediaops

import (
	"context"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
)

// Convert performs the basic WebM conversion through a directly invoked
// ffmpeg process. The runner is constructed first so a missing installation
// aborts before any output directory is touched.
func (o *Operator) Convert(ctx context.Context, inputPath string) (string, error) {
	runner, err := ffmpegWrap.NewRunner(o.logger, o.verbose)
	if err != nil {
		return "", err
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	settings := ffmpegWrap.GetCodecSettings("webm")
	outputPath := o.outPath("converted_basic" + settings.FileExtension)

	req := ffmpegWrap.Request{
		Name:       "convert",
		Args:       ffmpegWrap.BuildConvert(inputPath, outputPath, settings.VideoBitrate, settings.AudioBitrate),
		OutputPath: outputPath,
	}

	if res := runner.Run(ctx, req); res.Failed() {
		return "", surfaceResult(req.Name, res)
	}
	return outputPath, nil
}

// Transcode converts to MP4 through the wrapper library
func (o *Operator) Transcode(opts config.TranscodeOptions) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	settings := ffmpegWrap.GetCodecSettings("mp4")
	outputPath := o.outPath("transcoded" + settings.FileExtension)

	if err := o.runStream("transcode", buildTranscode(opts, settings, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

// buildTranscode starts from the container preset and lets non-empty options
// override the rates
func buildTranscode(opts config.TranscodeOptions, settings ffmpegWrap.CodecSettings, outputPath string) *ffmpeg.Stream {
	args := settings.OutputArgs()
	if opts.VideoBitrate != "" {
		args["b:v"] = opts.VideoBitrate
	}
	if opts.AudioBitrate != "" {
		args["b:a"] = opts.AudioBitrate
	}
	if opts.Preset != "" {
		args["preset"] = opts.Preset
	}
	return ffmpeg.Input(opts.InputPath).Output(outputPath, args)
}
