package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and cleans up", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := WriteTempFile("# Heading\n", "md")
		if err != nil {
			t.Fatalf("WriteTempFile() error: %v", err)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from CreateTemp
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(data) != "# Heading\n" {
			t.Errorf("content = %q, want %q", data, "# Heading\n")
		}
		if !strings.HasSuffix(path, ".md") {
			t.Errorf("path %q missing extension", path)
		}

		cleanup()
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("cleanup did not remove %q", path)
		}
	})

	t.Run("rejects empty extension", func(t *testing.T) {
		t.Parallel()

		_, _, err := WriteTempFile("x", "")
		if !errors.Is(err, ErrExtensionEmpty) {
			t.Errorf("WriteTempFile() error = %v, want ErrExtensionEmpty", err)
		}
	})

	t.Run("rejects path traversal in extension", func(t *testing.T) {
		t.Parallel()

		_, _, err := WriteTempFile("x", "md/../../etc")
		if !errors.Is(err, ErrExtensionPathTraversal) {
			t.Errorf("WriteTempFile() error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid", "yaml", nil},
		{"empty", "", ErrExtensionEmpty},
		{"forward slash", "a/b", ErrExtensionPathTraversal},
		{"backslash", `a\b`, ErrExtensionPathTraversal},
		{"null byte", "md\x00", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateExtension(tt.extension)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExtension(%q) error: %v", tt.extension, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "flow.yml")
	if err := os.WriteFile(path, []byte("pages: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true, want false")
	}
	if FileExists(filepath.Join(dir, "missing.yml")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"config", false},
		{"./config.yaml", true},
		{"/etc/flow2tex/config.yaml", true},
		{`dir\config.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
