package util

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestNewStorageKey(t *testing.T) {
	t.Parallel()

	key := NewStorageKey("media", "Sunset Flight.MP4")
	if !strings.HasPrefix(key, "media/") {
		t.Fatalf("NewStorageKey missing prefix: %s", key)
	}
	if !strings.HasSuffix(key, ".mp4") {
		t.Fatalf("NewStorageKey should lowercase the extension: %s", key)
	}

	other := NewStorageKey("media", "Sunset Flight.MP4")
	if key == other {
		t.Fatal("NewStorageKey should produce unique keys")
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "clip.mp4", expected: "clip.mp4"},
		{name: "unix path stripped", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path stripped", input: `C:\files\clip.mp4`, expected: "clip.mp4"},
		{name: "quotes removed", input: `cl"ip.mp4`, expected: "clip.mp4"},
		{name: "empty falls back", input: "", expected: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFileName(tt.input); got != tt.expected {
				t.Fatalf("SanitizeFileName(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
