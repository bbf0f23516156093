package mediaops

import (
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
)

// Probe reads metadata for a media file. Read-only: no output directory is
// created and no files are written.
func (o *Operator) Probe(inputPath string) (*ffmpegWrap.Report, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error probing file: %v", err)
	}
	return ffmpegWrap.ParseReport(probe)
}

// DescribeReport renders a probe report as the human-readable summary printed
// by the probe command
func DescribeReport(report *ffmpegWrap.Report) string {
	var sb strings.Builder

	sb.WriteString("File Information:\n")
	sb.WriteString(fmt.Sprintf("  Format: %s\n", report.Format.FormatLongName))
	sb.WriteString(fmt.Sprintf("  Duration: %.2f seconds\n", report.Duration()))
	sb.WriteString(fmt.Sprintf("  Size: %.2f MB\n", float64(report.SizeBytes())/1024/1024))
	sb.WriteString(fmt.Sprintf("  Bitrate: %.0f kbps\n", float64(report.BitRate())/1000))

	if video := report.VideoStream(); video != nil {
		fps, err := ffmpegWrap.ParseRational(video.RFrameRate)
		if err != nil {
			fps = 0
		}
		sb.WriteString("\nVideo Stream:\n")
		sb.WriteString(fmt.Sprintf("  Codec: %s\n", video.CodecName))
		sb.WriteString(fmt.Sprintf("  Resolution: %dx%d\n", video.Width, video.Height))
		sb.WriteString(fmt.Sprintf("  FPS: %.2f\n", fps))
		sb.WriteString(fmt.Sprintf("  Pixel Format: %s\n", video.PixFmt))
	}

	if audio := report.AudioStream(); audio != nil {
		bitrate, _ := strconv.ParseInt(audio.BitRate, 10, 64)
		sb.WriteString("\nAudio Stream:\n")
		sb.WriteString(fmt.Sprintf("  Codec: %s\n", audio.CodecName))
		sb.WriteString(fmt.Sprintf("  Sample Rate: %s Hz\n", audio.SampleRate))
		sb.WriteString(fmt.Sprintf("  Channels: %d\n", audio.Channels))
		sb.WriteString(fmt.Sprintf("  Bitrate: %.0f kbps\n", float64(bitrate)/1000))
	}

	if subs := report.SubtitleStreams(); len(subs) > 0 {
		sb.WriteString(fmt.Sprintf("\nSubtitle Streams: %d\n", len(subs)))
	}

	return sb.String()
}
