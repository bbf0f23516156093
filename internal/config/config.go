package config

// TrimOptions defines options for trimming a video without re-encoding
type TrimOptions struct {
	InputPath string
	OutputDir string
	Start     float64
	Duration  float64
	Verbose   bool
}

// TranscodeOptions defines options for the wrapper-library conversion
type TranscodeOptions struct {
	InputPath    string
	OutputDir    string
	VideoBitrate string // e.g. "2M"
	AudioBitrate string // e.g. "192k"
	Preset       string
	Verbose      bool
}

// GradeOptions defines options for the color-grade filter chain
type GradeOptions struct {
	InputPath  string
	OutputDir  string
	FrameRate  int
	Contrast   float64
	Brightness float64
	HueShift   int
	Verbose    bool
}

// GifOptions defines options for GIF creation
type GifOptions struct {
	InputPath string
	OutputDir string
	Start     float64
	Duration  float64
	Verbose   bool
}

// HLSOptions defines options for HLS segmentation
type HLSOptions struct {
	InputPath      string
	OutputDir      string
	SegmentSeconds int
	Verbose        bool
}

const (
	// Default output root for all generated artifacts
	DefaultOutputDir = "./mediakit_output"

	// Subdirectories created under the output root
	FramesSubdir = "frames"
	HLSSubdir    = "hls"

	// Frame extraction pattern
	FramePattern = "frame_%04d.png"

	// HLS defaults
	HLSPlaylistName    = "playlist.m3u8"
	HLSSegmentSeconds  = 10
	HLSKeepAllSegments = 0 // hls_list_size value meaning "unbounded"

	// GIF defaults
	GifFrameRate = 10
	GifWidth     = 480

	// Scaled output resolution for the filter operations (1280x720)
	FilterWidth  = 1280
	FilterHeight = 720

	// Text overlay settings for the enhance operation
	TextSize     = "48"        // Font size for the overlay label
	TextColor    = "white"     // Text color
	TextBoxColor = "black@0.5" // Box background color
	TextBoxWidth = "5"         // Box border width
)
