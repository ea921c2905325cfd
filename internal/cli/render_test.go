package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pacak/semantic/pkg/errors"
)

const testManifest = `
[page]
name    = "corrupt"
section = "1"
summary = "modify files by randomly changing bits"

[[sections]]
title      = "DESCRIPTION"
paragraphs = ["**corrupt** modifies files by toggling a randomly chosen bit."]
`

// testContext returns a context with a logger that discards output.
func testContext() context.Context {
	return withLogger(context.Background(), newLogger(io.Discard, log.ErrorLevel))
}

// writeManifest writes the test manifest to a temp dir and returns its path.
func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corrupt.toml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{formatMan, false},
		{formatMarkdown, false},
		{formatAll, false},
		{"pdf", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestBuildTargets(t *testing.T) {
	manifestPath := writeManifest(t)
	outDir := t.TempDir()

	tests := []struct {
		format    string
		wantFiles []string
	}{
		{formatMan, []string{"corrupt.1"}},
		{formatMarkdown, []string{"corrupt.md"}},
		{formatAll, []string{"corrupt.1", "corrupt.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			targets, err := buildTargets([]string{manifestPath}, renderOpts{outDir: outDir, format: tt.format})
			if err != nil {
				t.Fatalf("buildTargets() error = %v", err)
			}
			if len(targets) != len(tt.wantFiles) {
				t.Fatalf("len(targets) = %d, want %d", len(targets), len(tt.wantFiles))
			}
			for i, name := range tt.wantFiles {
				want := filepath.Join(outDir, name)
				if targets[i].path != want {
					t.Errorf("targets[%d].path = %q, want %q", i, targets[i].path, want)
				}
				if len(targets[i].data) == 0 {
					t.Errorf("targets[%d].data is empty", i)
				}
			}
		})
	}
}

func TestBuildTargetsMissingManifest(t *testing.T) {
	_, err := buildTargets([]string{filepath.Join(t.TempDir(), "missing.toml")},
		renderOpts{outDir: ".", format: formatMan})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRunRenderWritesFiles(t *testing.T) {
	manifestPath := writeManifest(t)
	outDir := t.TempDir()

	err := runRender(testContext(), []string{manifestPath}, renderOpts{outDir: outDir, format: formatAll})
	if err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	manPage, err := os.ReadFile(filepath.Join(outDir, "corrupt.1"))
	if err != nil {
		t.Fatalf("ReadFile(corrupt.1) error = %v", err)
	}
	if !strings.Contains(string(manPage), ".TH CORRUPT 1\n") {
		t.Errorf("man page missing title header:\n%s", manPage)
	}

	markdown, err := os.ReadFile(filepath.Join(outDir, "corrupt.md"))
	if err != nil {
		t.Fatalf("ReadFile(corrupt.md) error = %v", err)
	}
	if !strings.Contains(string(markdown), "# DESCRIPTION") {
		t.Errorf("markdown missing section header:\n%s", markdown)
	}
}

func TestRunRenderIsIdempotent(t *testing.T) {
	manifestPath := writeManifest(t)
	outDir := t.TempDir()
	opts := renderOpts{outDir: outDir, format: formatMan}

	if err := runRender(testContext(), []string{manifestPath}, opts); err != nil {
		t.Fatalf("first runRender() error = %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, "corrupt.1"))
	if err != nil {
		t.Fatal(err)
	}

	if err := runRender(testContext(), []string{manifestPath}, opts); err != nil {
		t.Fatalf("second runRender() error = %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, "corrupt.1"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("second render changed the output file")
	}
}
