package javac

import (
	"os"
	"slices"
	"strings"

	"go.trai.ch/mrjar/internal/core/domain"
)

// BuildArgs renders the compiler options of a request as command-line flags.
// Source files are not included.
func BuildArgs(req domain.CompileRequest) []string {
	opts := req.Options
	args := []string{"-d", req.OutputRoot}

	if len(req.Classpath) > 0 {
		args = append(args, "-classpath", strings.Join(req.Classpath, string(os.PathListSeparator)))
	}
	if len(req.SourceRoots) > 0 {
		args = append(args, "-sourcepath", strings.Join(req.SourceRoots, string(os.PathListSeparator)))
	}

	// --release supersedes -source and -target.
	if opts.Release != "" {
		args = append(args, "--release", opts.Release)
	} else {
		if opts.Source != "" {
			args = append(args, "-source", opts.Source)
		}
		if opts.Target != "" {
			args = append(args, "-target", opts.Target)
		}
	}

	if opts.Encoding != "" {
		args = append(args, "-encoding", opts.Encoding)
	}
	if opts.Debug {
		if opts.DebugLevel != "" {
			args = append(args, "-g:"+opts.DebugLevel)
		} else {
			args = append(args, "-g")
		}
	}
	if !opts.ShowWarnings {
		args = append(args, "-nowarn")
	}
	if opts.ShowDeprecation {
		args = append(args, "-deprecation")
	}
	if opts.Verbose {
		args = append(args, "-verbose")
	}
	if opts.FailOnWarning {
		args = append(args, "-Werror")
	}
	if opts.GeneratedSourcesDirectory != "" {
		args = append(args, "-s", opts.GeneratedSourcesDirectory)
	}

	keys := make([]string, 0, len(opts.CompilerArguments))
	for k := range opts.CompilerArguments {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		flag := k
		if !strings.HasPrefix(flag, "-") {
			flag = "-" + flag
		}
		args = append(args, flag)
		if v := opts.CompilerArguments[k]; v != "" {
			args = append(args, v)
		}
	}

	args = append(args, strings.Fields(opts.CompilerArgument)...)
	args = append(args, opts.CompilerArgs...)

	return args
}
