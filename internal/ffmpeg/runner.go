package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Request describes one external tool invocation: a named operation, the
// ordered argument list, and the artifact the tool is expected to write.
type Request struct {
	Name       string
	Args       []string
	OutputPath string
}

// Result holds the outcome of a single invocation. Stderr carries the tool's
// diagnostic text verbatim; it is never parsed or classified.
type Result struct {
	Stderr string
	Err    error
}

// Failed reports whether the invocation ended with a non-zero status
func (r Result) Failed() bool {
	return r.Err != nil
}

// Runner invokes the ffmpeg binary directly with hand-assembled arguments.
// The binary is resolved once at construction; a missing installation is
// reported there and no Runner is returned.
type Runner struct {
	logger     zerolog.Logger
	ffmpegPath string
	verbose    bool
}

// NewRunner resolves the ffmpeg binary and creates a runner
func NewRunner(logger zerolog.Logger, verbose bool) (*Runner, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, errors.Wrap(err, "ffmpeg not installed or not in PATH")
	}

	return &Runner{
		logger:     logger.With().Str("component", "runner").Logger(),
		ffmpegPath: path,
		verbose:    verbose,
	}, nil
}

// Run executes a single request and blocks until the process exits. Each call
// is independent; there is no retry and no cleanup of partial output files.
func (r *Runner) Run(ctx context.Context, req Request) Result {
	r.logger.Debug().
		Str("op", req.Name).
		Str("output", req.OutputPath).
		Strs("args", req.Args).
		Msg("invoking ffmpeg")

	cmd := exec.CommandContext(ctx, r.ffmpegPath, req.Args...)

	var stderrBuf bytes.Buffer
	if r.verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err != nil {
		err = errors.Wrapf(err, "%s failed", req.Name)
	}

	return Result{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// Installed reports whether both external binaries are available. Used by the
// doctor command; the error from LookPath is intentionally discarded.
func Installed() (ffmpegFound, ffprobeFound bool) {
	_, err := exec.LookPath("ffmpeg")
	ffmpegFound = err == nil
	_, err = exec.LookPath("ffprobe")
	ffprobeFound = err == nil
	return ffmpegFound, ffprobeFound
}
