package mediaops

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Concat joins multiple videos into one through the concat filter. Inputs are
// re-encoded so mismatched codecs are tolerated.
func (o *Operator) Concat(inputPaths []string) (string, error) {
	if len(inputPaths) < 2 {
		return "", fmt.Errorf("concat requires at least 2 input videos, got %d", len(inputPaths))
	}

	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	outputPath := o.outPath("concatenated.mp4")

	if err := o.runStream("concat", o.buildConcat(inputPaths, outputPath)); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (o *Operator) buildConcat(inputPaths []string, outputPath string) *ffmpeg.Stream {
	inputs := make([]*ffmpeg.Stream, 0, len(inputPaths))
	for _, path := range inputPaths {
		inputs = append(inputs, ffmpeg.Input(path))
	}

	return o.proc.CreateConcatFilter(inputs, len(inputs)).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v": "libx264",
			"c:a": "aac",
		})
}
