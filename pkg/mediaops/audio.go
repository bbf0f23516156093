package mediaops

import (
	"context"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
)

// ExtractAudio pulls the audio track out of a video as MP3. Quality is the
// libmp3lame VBR level (0-9, lower is better).
func (o *Operator) ExtractAudio(ctx context.Context, inputPath string, quality int) (string, error) {
	runner, err := ffmpegWrap.NewRunner(o.logger, o.verbose)
	if err != nil {
		return "", err
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("extracted_audio.mp3")

	req := ffmpegWrap.Request{
		Name:       "extract-audio",
		Args:       ffmpegWrap.BuildExtractAudio(inputPath, outputPath, quality),
		OutputPath: outputPath,
	}

	if res := runner.Run(ctx, req); res.Failed() {
		return "", surfaceResult(req.Name, res)
	}
	return outputPath, nil
}

// MuxAudio replaces the audio track of a video with a separate audio file
func (o *Operator) MuxAudio(ctx context.Context, videoPath, audioPath string) (string, error) {
	runner, err := ffmpegWrap.NewRunner(o.logger, o.verbose)
	if err != nil {
		return "", err
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("with_audio.mp4")

	req := ffmpegWrap.Request{
		Name:       "mux-audio",
		Args:       ffmpegWrap.BuildMuxAudio(videoPath, audioPath, outputPath),
		OutputPath: outputPath,
	}

	if res := runner.Run(ctx, req); res.Failed() {
		return "", surfaceResult(req.Name, res)
	}
	return outputPath, nil
}

// Waveform renders an audio file as a line waveform video
func (o *Operator) Waveform(audioPath string) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("audio_viz.mp4")

	if err := o.runStream("waveform", buildWaveform(audioPath, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func buildWaveform(audioPath, outputPath string) *ffmpeg.Stream {
	return ffmpeg.Input(audioPath).
		Filter("showwaves", ffmpeg.Args{}, ffmpeg.KwArgs{
			"s":      "1280x720",
			"mode":   "line",
			"colors": "blue",
		}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"c:a":     "aac",
		})
}
