// Package compile invokes the external LaTeX compiler over assembled source
// inside an isolated temporary directory. Shell escape is disabled on every
// pass and the temporary directory is removed on every exit path, success or
// not.
package compile

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/validation"
)

// SourceExt is the extension of the source file handed to the compiler.
const SourceExt = ".tex"

// ArtifactExt is the extension of the compiled artifact.
const ArtifactExt = ".pdf"

// passes is fixed: the compiler resolves internal references and layout on
// the second pass. This is not adaptive.
const passes = 2

// Gateway runs the external compiler.
type Gateway struct {
	command string
	timeout time.Duration
	logger  logging.Logger
}

// Options configures a Gateway.
type Options struct {
	// Command is the compiler binary, default pdflatex
	Command string
	// Timeout bounds one whole compile call (both passes); zero means none
	Timeout time.Duration
}

// NewGateway creates a gateway.
func NewGateway(opts Options, logger logging.Logger) *Gateway {
	command := opts.Command
	if command == "" {
		command = "pdflatex"
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Gateway{
		command: command,
		timeout: opts.Timeout,
		logger:  logger.WithComponent("compiler"),
	}
}

// Compile writes source into an isolated temporary directory, runs the
// compiler exactly twice with shell escape disabled, and moves the resulting
// artifact into outputDir. It returns the final artifact path.
//
// baseName is validated before any I/O: names with path separators or
// parent-directory tokens fail with InvalidName and no temporary directory
// is created. The temporary directory name carries a per-call unique suffix
// so concurrent exports of the same list cannot collide.
func (g *Gateway) Compile(ctx context.Context, source, outputDir, baseName string) (string, error) {
	if err := validation.ValidateBaseName(baseName); err != nil {
		return "", err
	}

	binary, err := exec.LookPath(g.command)
	if err != nil {
		return "", errors.CompilerUnavailable(g.command, err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	// MkdirTemp appends a random suffix, which is the uniqueness token that
	// keeps two concurrent exports of the same list apart.
	tmpDir, err := os.MkdirTemp("", "questoes-"+baseName+"-")
	if err != nil {
		return "", errors.Internal("creating temporary compile directory", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			// Cleanup failure must not mask the original error.
			g.logger.Warn(context.Background(), rmErr, "failed to remove temporary compile directory",
				"dir", tmpDir)
		}
	}()

	srcPath := filepath.Join(tmpDir, baseName+SourceExt)
	if err := os.WriteFile(srcPath, []byte(source), 0o600); err != nil {
		return "", errors.Internal("writing compile source", err)
	}

	for pass := 1; pass <= passes; pass++ {
		if err := g.runPass(ctx, binary, tmpDir, srcPath, pass); err != nil {
			return "", err
		}
	}

	artifact := filepath.Join(tmpDir, baseName+ArtifactExt)
	if _, err := os.Stat(artifact); err != nil {
		return "", errors.ArtifactMissing(artifact)
	}

	target := filepath.Join(outputDir, baseName+ArtifactExt)
	if err := moveFile(artifact, target); err != nil {
		return "", errors.Internal("moving artifact to output directory", err)
	}

	g.logger.Info(ctx, "compilation finished", "artifact", target, "passes", passes)
	return target, nil
}

// runPass executes one compiler pass with hardened flags: shell escape off,
// non-interactive error mode, output confined to the temporary directory.
func (g *Gateway) runPass(ctx context.Context, binary, tmpDir, srcPath string, pass int) error {
	cmd := exec.CommandContext(ctx, binary,
		"-no-shell-escape",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", tmpDir,
		srcPath,
	)
	cmd.Dir = tmpDir

	g.logger.Debug(ctx, "running compiler pass", "pass", pass, "command", g.command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return errors.CompilationFailed(pass, string(output),
				fmt.Errorf("compiler interrupted: %w", ctx.Err()))
		}
		return errors.CompilationFailed(pass, string(output), err)
	}
	return nil
}

// moveFile renames src to dst, falling back to copy+remove when the rename
// crosses devices (the temp dir commonly lives on another filesystem).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		// A truncated artifact must not be left where the caller expects
		// a complete one.
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
