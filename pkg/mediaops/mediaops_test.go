package mediaops

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipforge/mediakit/internal/config"
	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
)

func countOccurrences(args []string, want string) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}

// installFakeTools puts executable stand-ins on a fresh PATH so operations
// can be exercised without real installations
func installFakeTools(t *testing.T, tools map[string]string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts are not portable to windows")
	}

	binDir := t.TempDir()
	for name, script := range tools {
		require.NoError(t, os.WriteFile(filepath.Join(binDir, name), []byte(script), 0755))
	}
	t.Setenv("PATH", binDir)
}

func TestEnsureOutputDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	op := New(dir, false)

	require.NoError(t, op.EnsureOutputDir())
	require.NoError(t, op.EnsureOutputDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConvertMissingBinaryTouchesNothing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	dir := filepath.Join(t.TempDir(), "out")
	op := New(dir, false)

	_, err := op.Convert(context.Background(), "in.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestConvertSurfacesDiagnosticVerbatim(t *testing.T) {
	installFakeTools(t, map[string]string{
		"ffmpeg": "#!/bin/sh\necho 'in.mp4: Invalid data found when processing input' >&2\nexit 1\n",
	})

	op := New(filepath.Join(t.TempDir(), "out"), false)

	_, err := op.Convert(context.Background(), "in.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in.mp4: Invalid data found when processing input")
}

func TestBuildTrimArgs(t *testing.T) {
	args := buildTrim(config.TrimOptions{
		InputPath: "in.mp4",
		Start:     5.5,
		Duration:  10.25,
	}, "out/trimmed.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))

	// Start and duration are input options and keep their literal values
	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-ss 5.5")
	assert.Contains(t, joined, "-t 10.25")
	assert.Contains(t, joined, "-c:a copy")
	assert.Contains(t, joined, "-c:v copy")
	assert.Contains(t, args, "out/trimmed.mp4")
}

func TestBuildTranscodeArgs(t *testing.T) {
	args := buildTranscode(config.TranscodeOptions{
		InputPath:    "in.mp4",
		VideoBitrate: "4M",
		AudioBitrate: "256k",
		Preset:       "fast",
	}, ffmpegWrap.GetCodecSettings("mp4"), "out/transcoded.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))

	// Explicit options win over the container preset
	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-b:v 4M")
	assert.Contains(t, joined, "-b:a 256k")
	assert.Contains(t, joined, "-preset fast")
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-c:a aac")
}

func TestBuildTranscodeUsesPresetDefaults(t *testing.T) {
	args := buildTranscode(config.TranscodeOptions{
		InputPath: "in.mp4",
	}, ffmpegWrap.GetCodecSettings("mp4"), "out/transcoded.mp4").GetArgs()

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-b:v 2M")
	assert.Contains(t, joined, "-b:a 192k")
	assert.Contains(t, joined, "-preset medium")
	assert.Contains(t, joined, "-f mp4")
}

func TestBuildGradeArgs(t *testing.T) {
	args := buildGrade(config.GradeOptions{
		InputPath:  "in.mp4",
		FrameRate:  30,
		Contrast:   1.1,
		Brightness: 0.05,
		HueShift:   10,
	}, "out/graded.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "scale=1280:720")
	assert.Contains(t, joined, "fps=30")
	assert.Contains(t, joined, "contrast=1.1")
	assert.Contains(t, joined, "brightness=0.05")
	assert.Contains(t, joined, "h=10")
}

func TestBuildConcatArgs(t *testing.T) {
	op := New(t.TempDir(), false)

	args := op.buildConcat([]string{"a.mp4", "b.mp4"}, "out/concatenated.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "a.mp4"))
	assert.Equal(t, 1, countOccurrences(args, "b.mp4"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "concat=n=2:v=1:a=1")
}

func TestConcatRejectsSingleInput(t *testing.T) {
	op := New(t.TempDir(), false)

	_, err := op.Concat([]string{"only.mp4"})
	assert.Error(t, err)
}

func TestBuildOverlayArgs(t *testing.T) {
	op := New(t.TempDir(), false)

	args := op.buildOverlay("base.mp4", "pip.mp4", "out/overlay.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "base.mp4"))
	assert.Equal(t, 1, countOccurrences(args, "pip.mp4"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "scale=iw/4:ih/4")
	assert.Contains(t, joined, "overlay=x=W-w-10:y=H-h-10")
}

func TestBuildWatermarkArgs(t *testing.T) {
	op := New(t.TempDir(), false)

	args := op.buildWatermark("in.mp4", "logo.png", "out/watermarked.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))
	assert.Equal(t, 1, countOccurrences(args, "logo.png"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "overlay=x=W-w-10:y=10")
	assert.Contains(t, joined, "-c:a copy")
}

func TestBuildFramesArgs(t *testing.T) {
	args := buildFrames("in.mp4", "out/frames/frame_%04d.png", 1).GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))
	assert.Contains(t, args, "out/frames/frame_%04d.png")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "fps=1")
	assert.Contains(t, joined, "-c:v png")
}

func TestBuildSlideshowArgs(t *testing.T) {
	args := buildSlideshow("frames/*.png", "out/from_images.mp4", 30).GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "frames/*.png"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-framerate 30")
	assert.Contains(t, joined, "-pattern_type glob")
	assert.Contains(t, joined, "-crf 20")
	assert.Contains(t, joined, "-pix_fmt yuv420p")
}

func TestBuildGIFArgs(t *testing.T) {
	args := buildGIF(config.GifOptions{
		InputPath: "in.mp4",
		Start:     2.5,
		Duration:  5,
	}, "out/output.gif").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-ss 2.5")
	assert.Contains(t, joined, "fps=10")
	assert.Contains(t, joined, "scale=480:-1")
}

func TestRemainderAfter(t *testing.T) {
	assert.InDelta(t, 8, remainderAfter(10, 2), 0.001)
	assert.InDelta(t, 10, remainderAfter(10, 0), 0.001)
	assert.Zero(t, remainderAfter(10, 10))
	assert.Zero(t, remainderAfter(10, 12))
}

func TestCreateGIFProbesClipLength(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	installFakeTools(t, map[string]string{
		"ffprobe": "#!/bin/sh\n" +
			`echo '{"streams":[{"codec_type":"video","codec_name":"h264","width":640,"height":360,"r_frame_rate":"25/1"}],"format":{"duration":"12.0"}}'` + "\n",
		"ffmpeg": fmt.Sprintf("#!/bin/sh\necho \"$@\" > %s\nexit 0\n", argsFile),
	})

	op := New(filepath.Join(t.TempDir(), "out"), false)

	// A zero duration resolves to the clip remainder after the start offset
	out, err := op.CreateGIF(config.GifOptions{InputPath: "in.mp4", Start: 2})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "output.gif"))

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)

	fields := strings.Fields(string(recorded))
	for i, f := range fields {
		if f == "-t" {
			require.Less(t, i+1, len(fields))
			assert.Equal(t, "10", fields[i+1])
			return
		}
	}
	t.Fatalf("no -t flag in recorded invocation: %s", recorded)
}

func TestRunStreamLogsCompiledCommand(t *testing.T) {
	installFakeTools(t, map[string]string{"ffmpeg": "#!/bin/sh\nexit 0\n"})

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	// Operator built without the verbose flag; the log level alone decides
	op := New(t.TempDir(), false)
	err := op.runStream("trim", buildTrim(config.TrimOptions{
		InputPath: "in.mp4",
		Start:     5,
		Duration:  10,
	}, "out/trimmed.mp4"))
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "invoking ffmpeg")
	assert.Contains(t, logged, "in.mp4")
}

func TestBuildHLSArgs(t *testing.T) {
	args := buildHLS(config.HLSOptions{
		InputPath:      "in.mp4",
		SegmentSeconds: 10,
	}, "out/hls/playlist.m3u8").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "in.mp4"))
	assert.Contains(t, args, "out/hls/playlist.m3u8")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-hls_time 10")
	assert.Contains(t, joined, "-hls_list_size 0")
	assert.Contains(t, joined, "-start_number 0")
}

func TestBuildHLSDefaultsSegmentDuration(t *testing.T) {
	args := buildHLS(config.HLSOptions{InputPath: "in.mp4"}, "out/hls/playlist.m3u8").GetArgs()

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-hls_time 10")
}

func TestBuildWaveformArgs(t *testing.T) {
	args := buildWaveform("song.mp3", "out/audio_viz.mp4").GetArgs()

	assert.Equal(t, 1, countOccurrences(args, "song.mp3"))

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "showwaves=")
	assert.Contains(t, joined, "mode=line")
	assert.Contains(t, joined, "colors=blue")
	assert.Contains(t, joined, "s=1280x720")
}

func TestDescribeReport(t *testing.T) {
	report, err := ffmpegWrap.ParseReport(`{
		"streams": [
			{
				"codec_type": "video",
				"codec_name": "h264",
				"width": 1920,
				"height": 1080,
				"pix_fmt": "yuv420p",
				"r_frame_rate": "30000/1001",
				"duration": "60.0"
			},
			{
				"codec_type": "audio",
				"codec_name": "aac",
				"sample_rate": "48000",
				"channels": 2,
				"bit_rate": "192000"
			}
		],
		"format": {
			"format_long_name": "QuickTime / MOV",
			"duration": "60.0",
			"size": "10485760",
			"bit_rate": "1400000"
		}
	}`)
	require.NoError(t, err)

	out := DescribeReport(report)
	assert.Contains(t, out, "Format: QuickTime / MOV")
	assert.Contains(t, out, "Duration: 60.00 seconds")
	assert.Contains(t, out, "Resolution: 1920x1080")
	assert.Contains(t, out, "FPS: 29.97")
	assert.Contains(t, out, "Sample Rate: 48000 Hz")
	assert.Contains(t, out, "Channels: 2")
}
