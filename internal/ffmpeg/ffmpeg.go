package ffmpeg

import (
	"fmt"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodecSettings groups the codec choices and default rates for a container
// format
type CodecSettings struct {
	VideoCodec      string
	AudioCodec      string
	VideoBitrate    string
	AudioBitrate    string
	Preset          string
	ContainerFormat string
	FileExtension   string
}

// OutputArgs renders the preset as output arguments for the wrapper library
func (s CodecSettings) OutputArgs() ffmpeg.KwArgs {
	args := ffmpeg.KwArgs{
		"c:v":    s.VideoCodec,
		"c:a":    s.AudioCodec,
		"b:v":    s.VideoBitrate,
		"b:a":    s.AudioBitrate,
		"format": s.ContainerFormat,
	}
	if s.Preset != "" {
		args["preset"] = s.Preset
	}
	return args
}

var codecPresets = map[string]CodecSettings{
	"webm": {
		VideoCodec:      "libvpx-vp9",
		AudioCodec:      "libopus",
		VideoBitrate:    "1M",
		AudioBitrate:    "128k",
		ContainerFormat: "webm",
		FileExtension:   ".webm",
	},
	"mp4": {
		VideoCodec:      "libx264",
		AudioCodec:      "aac",
		VideoBitrate:    "2M",
		AudioBitrate:    "192k",
		Preset:          "medium",
		ContainerFormat: "mp4",
		FileExtension:   ".mp4",
	},
}

func GetCodecSettings(outputFormat string) CodecSettings {
	if settings, ok := codecPresets[outputFormat]; ok {
		return settings
	}
	// Default to WebM if format not specified or invalid
	return codecPresets["webm"]
}

// GetSupportedFormats returns the container formats with codec presets
func GetSupportedFormats() []string {
	names := maps.Keys(codecPresets)
	slices.Sort(names)
	return names
}

// VideoMetadata contains metadata about a video file
type VideoMetadata struct {
	Duration  float64
	Width     int
	Height    int
	Codec     string
	FrameRate float64
}

// Processor wraps the ffmpeg-go stream API
type Processor struct{}

// NewProcessor creates a new FFmpeg processor
func NewProcessor() *Processor {
	return &Processor{}
}

// GetVideoMetadata retrieves metadata about a video file
func (p *Processor) GetVideoMetadata(inputPath string) (*VideoMetadata, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error probing video: %v", err)
	}

	report, err := ParseReport(probe)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	video := report.VideoStream()
	if video == nil {
		return nil, fmt.Errorf("no video stream found")
	}

	frameRate, err := ParseRational(video.RFrameRate)
	if err != nil {
		frameRate = 0
	}

	duration := report.Duration()
	if duration == 0 {
		return nil, fmt.Errorf("could not determine video duration")
	}

	return &VideoMetadata{
		Duration:  duration,
		Width:     video.Width,
		Height:    video.Height,
		Codec:     video.CodecName,
		FrameRate: frameRate,
	}, nil
}

// CreateConcatFilter creates a filter for concatenating multiple video streams
func (p *Processor) CreateConcatFilter(inputs []*ffmpeg.Stream, numStreams int) *ffmpeg.Stream {
	return ffmpeg.Filter(inputs, "concat", ffmpeg.Args{
		fmt.Sprintf("n=%d", numStreams),
		"v=1",
		"a=1",
	})
}

// CreateOverlayFilter creates a filter for overlaying one video on top of another
func (p *Processor) CreateOverlayFilter(main, overlay *ffmpeg.Stream, x, y string) *ffmpeg.Stream {
	return ffmpeg.Filter([]*ffmpeg.Stream{main, overlay}, "overlay", ffmpeg.Args{
		fmt.Sprintf("x=%s", x),
		fmt.Sprintf("y=%s", y),
	})
}
