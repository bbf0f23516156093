package mediaops

import (
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/clipforge/mediakit/internal/config"
)

// SegmentHLS splits a video into HLS segments plus a playlist under the hls
// subdirectory. hls_list_size 0 keeps every segment in the playlist.
func (o *Operator) SegmentHLS(opts config.HLSOptions) (string, error) {
	if err := o.EnsureOutputDir(); err != nil {
		return "", err
	}

	hlsDir, err := o.ensureSubdir(config.HLSSubdir)
	if err != nil {
		return "", err
	}

	playlistPath := filepath.Join(hlsDir, config.HLSPlaylistName)

	if err := o.runStream("hls", buildHLS(opts, playlistPath)); err != nil {
		return "", err
	}
	return playlistPath, nil
}

func buildHLS(opts config.HLSOptions, playlistPath string) *ffmpeg.Stream {
	segmentSeconds := opts.SegmentSeconds
	if segmentSeconds <= 0 {
		segmentSeconds = config.HLSSegmentSeconds
	}

	return ffmpeg.Input(opts.InputPath).
		Output(playlistPath, ffmpeg.KwArgs{
			"format":        "hls",
			"start_number":  0,
			"hls_time":      segmentSeconds,
			"hls_list_size": config.HLSKeepAllSegments,
			"c:v":           "libx264",
			"c:a":           "aac",
		})
}
