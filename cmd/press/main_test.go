package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/press-cli/press"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		format press.Format
		want   string
	}{
		{"directory", "photos", press.FormatTarGz, "photos.tar.gz"},
		{"nested path", "/var/log/nginx", press.FormatTarZstd, "nginx.tar.zst"},
		{"trailing slash", "photos/", press.FormatZip, "photos.zip"},
		{"single file", "notes.md", press.FormatTarBz2, "notes.md.tar.bz2"},
		{"current dir", ".", press.FormatTarXz, "archive.tar.xz"},
		{"root", "/", press.FormatZip, "archive.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputPath(tt.src, tt.format))
		})
	}
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSize(tt.bytes))
	}
}
