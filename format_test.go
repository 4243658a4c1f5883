package press

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"tar-gz", "tar-gz", FormatTarGz},
		{"tar-bz2", "tar-bz2", FormatTarBz2},
		{"tar-xz", "tar-xz", FormatTarXz},
		{"tar-zstd", "tar-zstd", FormatTarZstd},
		{"zip", "zip", FormatZip},
		{"dotted alias", "tar.gz", FormatTarGz},
		{"zst alias", "tar.zst", FormatTarZstd},
		{"short alias", "tgz", FormatTarGz},
		{"case insensitive", "TAR-GZ", FormatTarGz},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "rar", "tar", "gzip", "7z"} {
		_, err := ParseFormat(input)
		require.ErrorIs(t, err, ErrUnsupportedFormat, "input %q", input)
	}
}

func TestFormatStringAndExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		str    string
		ext    string
	}{
		{FormatTarGz, "tar-gz", ".tar.gz"},
		{FormatTarBz2, "tar-bz2", ".tar.bz2"},
		{FormatTarXz, "tar-xz", ".tar.xz"},
		{FormatTarZstd, "tar-zstd", ".tar.zst"},
		{FormatZip, "zip", ".zip"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.format.String())
		assert.Equal(t, tt.ext, tt.format.Ext())
	}
}

func TestFormatSelectorsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range FormatNames {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
}
