package badge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{65.0601, "65.060"},
		{-12.34567, "-12.346"},
		{180, "180.000"},
		{359.9996, "360.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDegrees(tt.in))
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	badges := map[string]Badge{
		LastUpdateFile:      New("Dernière mise à jour", "Vendredi 21 Juin 2024"),
		CurrentAltitudeFile: New("Altitude", FormatDegrees(42.12345)),
		CurrentAzimuthFile:  New("Azimuth", FormatDegrees(181.5)),
	}

	for name, b := range badges {
		path := filepath.Join(dir, name)
		require.NoError(t, Write(path, b))

		got, err := Read(path)
		require.NoError(t, err)
		assert.Equal(t, b, got)
		assert.Equal(t, 1, got.SchemaVersion)
		assert.Equal(t, "green", got.Color)
	}

	alt, err := Read(filepath.Join(dir, CurrentAltitudeFile))
	require.NoError(t, err)
	assert.Equal(t, "42.123", alt.Message)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), CurrentAzimuthFile)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, Write(path, New("Azimuth", "90.000")))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "90.000", got.Message)
}

func TestWrite_MissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", LastUpdateFile), New("a", "b"))
	assert.Error(t, err)
}

func TestEncode_Schema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New("Altitude", "12.000")))

	assert.JSONEq(t, `{"schemaVersion":1,"label":"Altitude","message":"12.000","color":"green"}`, buf.String())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("{"))
	assert.Error(t, err)
}
