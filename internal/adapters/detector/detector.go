// Package detector decides whether the configured compiler can build multi-release archives.
package detector

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CapabilityDetector = (*Detector)(nil)

// versionRegex captures the version token of a "javac 17.0.2" style banner.
var versionRegex = regexp.MustCompile(`(?m)^\S+\s+(\d+(?:\.\d+)*)`)

// Detector inspects the compiler's version banner.
type Detector struct {
	logger ports.Logger
}

// New creates a new Detector.
func New(logger ports.Logger) *Detector {
	return &Detector{logger: logger}
}

// MultiReleaseSupported runs "<executable> -version" and reports whether the
// compiler targets a platform that understands versioned archive entries.
// A compiler that cannot be run is treated as unsupported.
func (d *Detector) MultiReleaseSupported(ctx context.Context, executable string) bool {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, executable, "-version") //nolint:gosec // user configured compiler
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		d.logger.Warn(zerr.With(zerr.Wrap(err, "failed to query compiler version"), "executable", executable).Error())
		return false
	}

	version, ok := ParseVersion(out.String())
	if !ok {
		d.logger.Warn("unrecognized compiler version banner: " + strings.TrimSpace(out.String()))
		return false
	}
	return Supports(version)
}

// ParseVersion extracts the version string from a compiler banner.
func ParseVersion(banner string) (string, bool) {
	m := versionRegex.FindStringSubmatch(strings.TrimSpace(banner))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Supports reports whether a platform version can produce multi-release archives.
// Legacy "1.x" versions cannot.
func Supports(version string) bool {
	if strings.HasPrefix(version, "1.") {
		return false
	}
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return false
	}
	return n >= 9
}
