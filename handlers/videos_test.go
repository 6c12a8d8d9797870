package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTempUploadPathStripsDirectories(t *testing.T) {
	tempDir := os.TempDir()

	tests := []struct {
		name     string
		filename string
		wantBase string
	}{
		{name: "plain name", filename: "intro.mp4", wantBase: "intro.mp4"},
		{name: "relative traversal", filename: "../../etc/passwd", wantBase: "passwd"},
		{name: "absolute path", filename: "/etc/passwd", wantBase: "passwd"},
		{name: "nested path", filename: "videos/clips/intro.mp4", wantBase: "intro.mp4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tempUploadPath(tc.filename)
			if want := filepath.Join(tempDir, tc.wantBase); got != want {
				t.Fatalf("tempUploadPath(%q) = %q, want %q", tc.filename, got, want)
			}
			if strings.Contains(got, "..") {
				t.Fatalf("tempUploadPath(%q) = %q still contains a parent reference", tc.filename, got)
			}
		})
	}
}
