package ffmpeg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Report is the parsed ffprobe output for one media file
type Report struct {
	Format  Format   `json:"format"`
	Streams []Stream `json:"streams"`
}

// Format matches the ffprobe format section
type Format struct {
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// Stream matches one entry of the ffprobe streams section
type Stream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	PixFmt     string `json:"pix_fmt"`
	RFrameRate string `json:"r_frame_rate"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
	BitRate    string `json:"bit_rate"`
	Duration   string `json:"duration"`
	NbFrames   string `json:"nb_frames"`
}

// ParseReport decodes the JSON document produced by ffprobe
func ParseReport(probe string) (*Report, error) {
	var report Report
	if err := json.Unmarshal([]byte(probe), &report); err != nil {
		return nil, errors.Wrap(err, "failed to parse ffprobe output")
	}
	return &report, nil
}

// VideoStream returns the first video stream, or nil if there is none
func (r *Report) VideoStream() *Stream {
	return r.streamOfType("video")
}

// AudioStream returns the first audio stream, or nil if there is none
func (r *Report) AudioStream() *Stream {
	return r.streamOfType("audio")
}

// SubtitleStreams returns all subtitle streams
func (r *Report) SubtitleStreams() []Stream {
	var subs []Stream
	for _, s := range r.Streams {
		if s.CodecType == "subtitle" {
			subs = append(subs, s)
		}
	}
	return subs
}

func (r *Report) streamOfType(codecType string) *Stream {
	for i := range r.Streams {
		if r.Streams[i].CodecType == codecType {
			return &r.Streams[i]
		}
	}
	return nil
}

// Duration resolves the file duration in seconds. The video stream duration
// is preferred; the format duration and a frame-count estimate are fallbacks.
func (r *Report) Duration() float64 {
	if video := r.VideoStream(); video != nil {
		if d, err := strconv.ParseFloat(strings.TrimSpace(video.Duration), 64); err == nil && d > 0 {
			return d
		}
	}

	if d, err := strconv.ParseFloat(strings.TrimSpace(r.Format.Duration), 64); err == nil && d > 0 {
		return d
	}

	// Last resort: estimate from frame count and frame rate
	if video := r.VideoStream(); video != nil {
		frames, err := strconv.ParseFloat(video.NbFrames, 64)
		if err != nil {
			return 0
		}
		rate, err := ParseRational(video.RFrameRate)
		if err != nil || rate == 0 {
			return 0
		}
		return frames / rate
	}

	return 0
}

// SizeBytes returns the container size in bytes, or 0 if unknown
func (r *Report) SizeBytes() int64 {
	size, err := strconv.ParseInt(r.Format.Size, 10, 64)
	if err != nil {
		return 0
	}
	return size
}

// BitRate returns the container bitrate in bits per second, or 0 if unknown
func (r *Report) BitRate() int64 {
	rate, err := strconv.ParseInt(r.Format.BitRate, 10, 64)
	if err != nil {
		return 0
	}
	return rate
}

// ParseRational parses an ffprobe rational such as "30000/1001" into a float.
// Plain numbers like "25" are accepted as well.
func ParseRational(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty rational")
	}

	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rational %q: %v", s, err)
	}
	if !found {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rational %q: %v", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("zero denominator in rational %q", s)
	}
	return n / d, nil
}
