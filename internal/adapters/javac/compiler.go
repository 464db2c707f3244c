// Package javac provides a compiler adapter that drives the javac command-line tool.
package javac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"time"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using os/exec.
type Compiler struct {
	logger  ports.Logger
	scanner ports.SourceScanner
	store   ports.BuildInfoStore
	hasher  ports.Hasher
}

// NewCompiler creates a new Compiler.
func NewCompiler(
	logger ports.Logger,
	scanner ports.SourceScanner,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
) *Compiler {
	return &Compiler{
		logger:  logger,
		scanner: scanner,
		store:   store,
		hasher:  hasher,
	}
}

// Compile selects the source units of the request and invokes the compiler on them.
//
// Nothing is invoked when no unit matches or when every compiled unit is newer
// than its source and the options are unchanged since the last run. Otherwise all
// matching units are recompiled so that cross-file references stay consistent.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) (domain.CompileResult, error) {
	files, err := c.scanner.Scan(req.SourceRoots, req.Sources)
	if err != nil {
		return domain.CompileResult{}, err
	}
	if len(files) == 0 {
		c.logger.Info("no sources to compile")
		return domain.CompileResult{NoSource: true}, nil
	}

	args := BuildArgs(req)
	fingerprint, err := c.fingerprint(args, req.Classpath)
	if err != nil {
		return domain.CompileResult{}, err
	}

	stale, err := c.staleFiles(files, fingerprint, req)
	if err != nil {
		return domain.CompileResult{}, err
	}
	if len(stale) == 0 {
		c.logger.Info("all classes are up to date")
		return domain.CompileResult{UpToDate: true}, nil
	}

	if err := os.MkdirAll(req.OutputRoot, domain.DirPerm); err != nil {
		return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", req.OutputRoot)
	}
	if dir := req.Options.GeneratedSourcesDirectory; dir != "" {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to create generated sources directory"), "path", dir)
		}
	}

	compiled := make([]string, 0, len(files))
	for _, f := range files {
		args = append(args, f.Path)
		compiled = append(compiled, f.Rel)
	}

	c.logger.Info("compiling " + pluralize(len(files)) + " to " + req.OutputRoot)
	if err := c.run(ctx, executable(req.Options), args); err != nil {
		return domain.CompileResult{}, err
	}

	if err := c.store.Put(domain.BuildInfo{
		OutputRoot:  req.OutputRoot,
		OptionsHash: fingerprint,
		Compiled:    len(compiled),
		Timestamp:   time.Now(),
	}); err != nil {
		return domain.CompileResult{}, err
	}

	return domain.CompileResult{Compiled: compiled}, nil
}

// fingerprint covers the compiler arguments and the content of every classpath
// archive, so a rebuilt dependency invalidates the pass.
func (c *Compiler) fingerprint(args, classpath []string) (string, error) {
	parts := slices.Clone(args)
	for _, entry := range classpath {
		info, err := os.Stat(entry)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		sum, err := c.hasher.ComputeFileHash(entry)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("classpath:%s=%016x", entry, sum))
	}
	return c.hasher.ComputeArgsHash(parts), nil
}

func (c *Compiler) staleFiles(
	files []domain.SourceFile,
	fingerprint string,
	req domain.CompileRequest,
) ([]domain.SourceFile, error) {
	info, err := c.store.Get(req.OutputRoot)
	if err != nil {
		return nil, err
	}
	if info == nil || info.OptionsHash != fingerprint {
		return files, nil
	}
	return c.scanner.Stale(files, req.OutputRoot, req.OutputSuffix, req.Stale)
}

func (c *Compiler) run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user configured compiler

	stdoutLog := &logWriter{logger: c.logger, level: "info"}
	stderrLog := &logWriter{logger: c.logger, level: "warn"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	var stdout, stderr io.Writer = stdoutLog, stderrLog
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdoutLog, vertex.Stdout())
		stderr = io.MultiWriter(stderrLog, vertex.Stderr())
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "compiler failed"), "exit_code", exitCode), "executable", name)
	}
	return nil
}

func executable(opts domain.CompilerOptions) string {
	if opts.Executable != "" {
		return opts.Executable
	}
	return domain.DefaultCompiler
}

func pluralize(n int) string {
	if n == 1 {
		return "1 source file"
	}
	return fmt.Sprintf("%d source files", n)
}
