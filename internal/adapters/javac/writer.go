package javac

import (
	"bytes"
	"strings"

	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

// logWriter forwards complete lines of compiler output to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	switch w.level {
	case "info":
		w.logger.Info(msg)
	case "warn":
		w.logger.Warn(msg)
	default:
		w.logger.Error(zerr.New(msg))
	}
}
