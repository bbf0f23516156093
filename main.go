package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipforge/mediakit/internal/config"
	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
	"github.com/clipforge/mediakit/internal/logging"
	"github.com/clipforge/mediakit/pkg/mediaops"
)

var (
	rootCmd = &cobra.Command{
		Use:   "mediakit",
		Short: "A command-line tool for common ffmpeg media operations",
		Long: `mediakit drives the external ffmpeg tool to perform common media
operations: conversion, filtering, trimming, concatenation, overlays, frame
extraction, GIF creation, HLS segmentation, and metadata probing.

Examples:
  # Convert a video to WebM
  mediakit convert -i input.mp4 -o ./out

  # Trim 10 seconds starting at 0:05 without re-encoding
  mediakit trim -i input.mp4 --start 5 --duration 10

  # Probe a file's metadata
  mediakit probe -i input.mp4`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.Init(verbose)
		},
	}

	convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert a video to WebM via direct ffmpeg invocation",
		Long: fmt.Sprintf(`Convert a video to WebM by invoking ffmpeg directly with a
hand-assembled argument list.

Container presets available to the conversion commands: %s

Example:
  mediakit convert -i input.mp4 -o ./out`,
			formatSupportedFormats()),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")

			out, err := newOperator(cmd).Convert(cmd.Context(), inputPath)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	enhanceCmd = &cobra.Command{
		Use:   "enhance",
		Short: "Scale, label, and color-adjust a video via a filter_complex chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			label, _ := cmd.Flags().GetString("label")

			out, err := newOperator(cmd).Enhance(cmd.Context(), inputPath, label)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	extractAudioCmd = &cobra.Command{
		Use:   "extract-audio",
		Short: "Extract the audio track of a video as MP3",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			quality, _ := cmd.Flags().GetInt("quality")

			out, err := newOperator(cmd).ExtractAudio(cmd.Context(), inputPath, quality)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	transcodeCmd = &cobra.Command{
		Use:   "transcode",
		Short: "Convert a video to MP4 via the wrapper library",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.TranscodeOptions{}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.VideoBitrate, _ = cmd.Flags().GetString("video-bitrate")
			opts.AudioBitrate, _ = cmd.Flags().GetString("audio-bitrate")
			opts.Preset, _ = cmd.Flags().GetString("preset")

			out, err := newOperator(cmd).Transcode(opts)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	probeCmd = &cobra.Command{
		Use:   "probe",
		Short: "Print metadata about a media file",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")

			report, err := newOperator(cmd).Probe(inputPath)
			if err != nil {
				return err
			}
			fmt.Print(mediaops.DescribeReport(report))
			return nil
		},
	}

	gradeCmd = &cobra.Command{
		Use:   "grade",
		Short: "Apply a filter chain: scale, frame rate, contrast, hue",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.GradeOptions{}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.FrameRate, _ = cmd.Flags().GetInt("fps")
			opts.Contrast, _ = cmd.Flags().GetFloat64("contrast")
			opts.Brightness, _ = cmd.Flags().GetFloat64("brightness")
			opts.HueShift, _ = cmd.Flags().GetInt("hue")

			out, err := newOperator(cmd).Grade(opts)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	trimCmd = &cobra.Command{
		Use:   "trim",
		Short: "Cut a section out of a video without re-encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.TrimOptions{}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.Start, _ = cmd.Flags().GetFloat64("start")
			opts.Duration, _ = cmd.Flags().GetFloat64("duration")

			out, err := newOperator(cmd).Trim(opts)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	concatCmd = &cobra.Command{
		Use:   "concat video1 video2 [video3 ...]",
		Short: "Concatenate multiple videos into one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOperator(cmd).Concat(args)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	overlayCmd = &cobra.Command{
		Use:   "overlay",
		Short: "Overlay one video on another (picture-in-picture)",
		RunE: func(cmd *cobra.Command, args []string) error {
			basePath, _ := cmd.Flags().GetString("base")
			overlayPath, _ := cmd.Flags().GetString("overlay")

			out, err := newOperator(cmd).Overlay(basePath, overlayPath)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	watermarkCmd = &cobra.Command{
		Use:   "watermark",
		Short: "Stamp an image into the top-right corner of a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			logoPath, _ := cmd.Flags().GetString("logo")

			out, err := newOperator(cmd).Watermark(inputPath, logoPath)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	framesCmd = &cobra.Command{
		Use:   "frames",
		Short: "Extract frames of a video as PNG images",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			fps, _ := cmd.Flags().GetInt("fps")

			out, err := newOperator(cmd).ExtractFrames(inputPath, fps)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Frames saved to: %s\n", out)
			return nil
		},
	}

	slideshowCmd = &cobra.Command{
		Use:   "slideshow",
		Short: "Build a video from an image sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, _ := cmd.Flags().GetString("pattern")
			fps, _ := cmd.Flags().GetInt("fps")

			out, err := newOperator(cmd).Slideshow(pattern, fps)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	muxAudioCmd = &cobra.Command{
		Use:   "mux-audio",
		Short: "Replace the audio track of a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			videoPath, _ := cmd.Flags().GetString("video")
			audioPath, _ := cmd.Flags().GetString("audio")

			out, err := newOperator(cmd).MuxAudio(cmd.Context(), videoPath, audioPath)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	gifCmd = &cobra.Command{
		Use:   "gif",
		Short: "Create an animated GIF from a section of a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.GifOptions{}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.Start, _ = cmd.Flags().GetFloat64("start")
			opts.Duration, _ = cmd.Flags().GetFloat64("duration")

			out, err := newOperator(cmd).CreateGIF(opts)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	hlsCmd = &cobra.Command{
		Use:   "hls",
		Short: "Segment a video for HLS streaming",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.HLSOptions{}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.SegmentSeconds, _ = cmd.Flags().GetInt("segment-duration")

			out, err := newOperator(cmd).SegmentHLS(opts)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Playlist: %s\n", out)
			return nil
		},
	}

	waveformCmd = &cobra.Command{
		Use:   "waveform",
		Short: "Render an audio file as a waveform video",
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath, _ := cmd.Flags().GetString("input")

			out, err := newOperator(cmd).Waveform(audioPath)
			if err != nil {
				return err
			}
			fmt.Printf("Success! Output: %s\n", out)
			return nil
		},
	}

	doctorCmd = &cobra.Command{
		Use:   "doctor",
		Short: "Check that ffmpeg and ffprobe are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ffmpegFound, ffprobeFound := ffmpegWrap.Installed()
			fmt.Printf("ffmpeg:  %s\n", installStatus(ffmpegFound))
			fmt.Printf("ffprobe: %s\n", installStatus(ffprobeFound))
			if !ffmpegFound || !ffprobeFound {
				return fmt.Errorf("missing external tools; install ffmpeg first")
			}
			return nil
		},
	}
)

// newOperator builds an operator from the persistent flags
func newOperator(cmd *cobra.Command) *mediaops.Operator {
	outputDir, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return mediaops.New(outputDir, verbose)
}

func installStatus(found bool) string {
	if found {
		return "installed"
	}
	return "NOT FOUND"
}

func formatSupportedFormats() string {
	return strings.Join(ffmpegWrap.GetSupportedFormats(), ", ")
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputDir, "Output directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	convertCmd.Flags().StringP("input", "i", "", "Input video file")
	convertCmd.MarkFlagRequired("input")

	enhanceCmd.Flags().StringP("input", "i", "", "Input video file")
	enhanceCmd.Flags().String("label", "mediakit", "Text drawn in the overlay box")
	enhanceCmd.MarkFlagRequired("input")

	extractAudioCmd.Flags().StringP("input", "i", "", "Input video file")
	extractAudioCmd.Flags().IntP("quality", "q", 2, "MP3 VBR quality (0-9, lower is better)")
	extractAudioCmd.MarkFlagRequired("input")

	transcodeCmd.Flags().StringP("input", "i", "", "Input video file")
	transcodeCmd.Flags().String("video-bitrate", "", "Video bitrate (default: container preset)")
	transcodeCmd.Flags().String("audio-bitrate", "", "Audio bitrate (default: container preset)")
	transcodeCmd.Flags().String("preset", "", "x264 encoder preset (default: container preset)")
	transcodeCmd.MarkFlagRequired("input")

	probeCmd.Flags().StringP("input", "i", "", "Input media file")
	probeCmd.MarkFlagRequired("input")

	gradeCmd.Flags().StringP("input", "i", "", "Input video file")
	gradeCmd.Flags().Int("fps", 30, "Output frame rate")
	gradeCmd.Flags().Float64("contrast", 1.1, "Contrast adjustment")
	gradeCmd.Flags().Float64("brightness", 0.05, "Brightness adjustment")
	gradeCmd.Flags().Int("hue", 10, "Hue shift in degrees")
	gradeCmd.MarkFlagRequired("input")

	trimCmd.Flags().StringP("input", "i", "", "Input video file")
	trimCmd.Flags().Float64P("start", "s", 5, "Start offset in seconds")
	trimCmd.Flags().Float64P("duration", "d", 10, "Duration in seconds")
	trimCmd.MarkFlagRequired("input")

	overlayCmd.Flags().String("base", "", "Base video file")
	overlayCmd.Flags().String("overlay", "", "Video to overlay")
	overlayCmd.MarkFlagRequired("base")
	overlayCmd.MarkFlagRequired("overlay")

	watermarkCmd.Flags().StringP("input", "i", "", "Input video file")
	watermarkCmd.Flags().String("logo", "", "Watermark image file")
	watermarkCmd.MarkFlagRequired("input")
	watermarkCmd.MarkFlagRequired("logo")

	framesCmd.Flags().StringP("input", "i", "", "Input video file")
	framesCmd.Flags().Int("fps", 1, "Frames to extract per second of video")
	framesCmd.MarkFlagRequired("input")

	slideshowCmd.Flags().String("pattern", "", "Image glob pattern (e.g. 'frames/*.png')")
	slideshowCmd.Flags().Int("fps", 30, "Images per second of output video")
	slideshowCmd.MarkFlagRequired("pattern")

	muxAudioCmd.Flags().String("video", "", "Input video file")
	muxAudioCmd.Flags().String("audio", "", "Audio file to mux in")
	muxAudioCmd.MarkFlagRequired("video")
	muxAudioCmd.MarkFlagRequired("audio")

	gifCmd.Flags().StringP("input", "i", "", "Input video file")
	gifCmd.Flags().Float64P("start", "s", 0, "Start offset in seconds")
	gifCmd.Flags().Float64P("duration", "d", 5, "Duration in seconds, 0 runs to the end of the clip")
	gifCmd.MarkFlagRequired("input")

	hlsCmd.Flags().StringP("input", "i", "", "Input video file")
	hlsCmd.Flags().Int("segment-duration", config.HLSSegmentSeconds, "Segment duration in seconds")
	hlsCmd.MarkFlagRequired("input")

	waveformCmd.Flags().StringP("input", "i", "", "Input audio file")
	waveformCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(extractAudioCmd)
	rootCmd.AddCommand(transcodeCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(watermarkCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(slideshowCmd)
	rootCmd.AddCommand(muxAudioCmd)
	rootCmd.AddCommand(gifCmd)
	rootCmd.AddCommand(hlsCmd)
	rootCmd.AddCommand(waveformCmd)
	rootCmd.AddCommand(doctorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
