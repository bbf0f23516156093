// Package mediaops implements the supported media operations. Each operation
// assembles one ffmpeg invocation, runs it, and returns the path of the
// artifact the external tool wrote. Operations are stateless and sequential;
// a failure surfaces the tool's diagnostic output and nothing is retried.
package mediaops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegWrap "github.com/clipforge/mediakit/internal/ffmpeg"
	"github.com/clipforge/mediakit/internal/logging"
)

// Operator runs media operations against one output root directory
type Operator struct {
	outputDir string
	verbose   bool
	proc      *ffmpegWrap.Processor
	logger    zerolog.Logger
}

// New creates an operator rooted at outputDir
func New(outputDir string, verbose bool) *Operator {
	return &Operator{
		outputDir: outputDir,
		verbose:   verbose,
		proc:      ffmpegWrap.NewProcessor(),
		logger:    logging.WithComponent("mediaops"),
	}
}

// OutputDir returns the output root path
func (o *Operator) OutputDir() string {
	return o.outputDir
}

// EnsureOutputDir creates the output root if it does not exist. Calling it
// again on an existing directory is a no-op.
func (o *Operator) EnsureOutputDir() error {
	if err := os.MkdirAll(o.outputDir, 0755); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}
	return nil
}

// ensureSubdir creates a named subdirectory under the output root
func (o *Operator) ensureSubdir(name string) (string, error) {
	dir := filepath.Join(o.outputDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "error creating %s directory", name)
	}
	return dir, nil
}

func (o *Operator) outPath(name string) string {
	return filepath.Join(o.outputDir, name)
}

// runStream executes a compiled ffmpeg-go stream with the fixed overwrite
// policy applied. The tool's stderr is captured and carried verbatim on the
// returned error.
func (o *Operator) runStream(name string, stream *ffmpeg.Stream) error {
	var stderrBuf bytes.Buffer

	s := stream.OverWriteOutput().WithErrorOutput(&stderrBuf).Silent(!o.verbose)

	o.logger.Debug().
		Str("op", name).
		Strs("args", s.GetArgs()).
		Msg("invoking ffmpeg")

	if err := s.Run(); err != nil {
		if diag := strings.TrimSpace(stderrBuf.String()); diag != "" {
			return errors.Wrap(err, diag)
		}
		return errors.Wrapf(err, "%s failed", name)
	}
	return nil
}

// surfaceResult converts a runner result into an error carrying the tool's
// diagnostic text unmodified
func surfaceResult(name string, res ffmpegWrap.Result) error {
	if !res.Failed() {
		return nil
	}
	if diag := strings.TrimSpace(res.Stderr); diag != "" {
		return errors.Wrap(res.Err, diag)
	}
	return errors.Wrapf(res.Err, "%s failed", name)
}
