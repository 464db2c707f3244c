package detector_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/mrjar/internal/adapters/detector"
	"go.trai.ch/mrjar/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		banner   string
		expected string
		ok       bool
	}{
		{name: "modern", banner: "javac 17.0.2\n", expected: "17.0.2", ok: true},
		{name: "major only", banner: "javac 21", expected: "21", ok: true},
		{name: "legacy", banner: "javac 1.8.0_292", expected: "1.8.0", ok: true},
		{name: "leading noise", banner: "Picked up JAVA_TOOL_OPTIONS: -Xmx1g\njavac 11.0.1", expected: "11.0.1", ok: true},
		{name: "garbage", banner: "command not found", ok: false},
		{name: "empty", banner: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detector.ParseVersion(tt.banner)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := map[string]bool{
		"1.8.0":  false,
		"1.9":    false,
		"8":      false,
		"9":      true,
		"11.0.1": true,
		"21":     true,
		"x":      false,
	}
	for version, expected := range tests {
		if got := detector.Supports(version); got != expected {
			t.Errorf("Supports(%q) = %v, expected %v", version, got, expected)
		}
	}
}

func TestDetector_MultiReleaseSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	modern := filepath.Join(dir, "javac-17")
	legacy := filepath.Join(dir, "javac-8")
	//nolint:gosec // Test requires executable file
	if err := os.WriteFile(modern, []byte("#!/bin/sh\necho 'javac 17.0.2' >&2\n"), 0o700); err != nil {
		t.Fatal(err)
	}
	//nolint:gosec // Test requires executable file
	if err := os.WriteFile(legacy, []byte("#!/bin/sh\necho 'javac 1.8.0_292'\n"), 0o700); err != nil {
		t.Fatal(err)
	}

	d := detector.New(mockLogger)
	if !d.MultiReleaseSupported(context.Background(), modern) {
		t.Error("expected modern compiler to be supported")
	}
	if d.MultiReleaseSupported(context.Background(), legacy) {
		t.Error("expected legacy compiler to be unsupported")
	}

	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	if d.MultiReleaseSupported(context.Background(), filepath.Join(dir, "missing")) {
		t.Error("expected missing compiler to be unsupported")
	}
}
