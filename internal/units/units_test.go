package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/dockmon/internal/errors"
)

func TestParseMemValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain MiB", input: "512MiB", want: 512},
		{name: "GiB scales up", input: "1GiB", want: 1024},
		{name: "KiB scales down", input: "1KiB", want: 1.0 / 1024},
		{name: "fractional GiB", input: "1.5GiB", want: 1536},
		{name: "lowercase unit", input: "2gib", want: 2048},
		{name: "internal spaces stripped", input: " 512 MiB ", want: 512},
		{name: "sentinel N/A", input: "N/A", want: 0},
		{name: "sentinel NA", input: "na", want: 0},
		{name: "sentinel N", input: "N", want: 0},
		{name: "sentinel A", input: "A", want: 0},
		{name: "unknown unit", input: "512XB", wantErr: true},
		{name: "no unit", input: "512", wantErr: true},
		{name: "no number", input: "MiB", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "multiple dots", input: "1.2.3MiB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMemValue(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrParse))
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseMemValueUnitConsistency(t *testing.T) {
	gib, err := ParseMemValue("1GiB")
	require.NoError(t, err)
	mib, err := ParseMemValue("1MiB")
	require.NoError(t, err)
	kib, err := ParseMemValue("1KiB")
	require.NoError(t, err)

	assert.InDelta(t, 1024*mib, gib, 1e-9)
	assert.InDelta(t, 1024*1024*kib, gib, 1e-9)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "0.0MiB"},
		{name: "below MiB boundary", input: 1023.9, want: "1023.9MiB"},
		{name: "exactly one GiB", input: 1024, want: "1.0GiB"},
		{name: "fractional GiB", input: 2355.2, want: "2.3GiB"},
		{name: "TiB ladder", input: 2048 * 1024, want: "2.0TiB"},
		{name: "PiB fallthrough", input: 1024 * 1024 * 1024, want: "1.0PiB"},
		{name: "beyond PiB stays PiB", input: 3 * 1024 * 1024 * 1024 * 1024, want: "3072.0PiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.input))
		})
	}
}

func TestReformatMemUsage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "round trip", input: "512MiB / 1GiB", want: "512.0MiB / 1.0GiB"},
		{name: "no spaces around slash", input: "512MiB/1GiB", want: "512.0MiB / 1.0GiB"},
		{name: "unit promotion", input: "2048MiB / 4096MiB", want: "2.0GiB / 4.0GiB"},
		{name: "N/A limit adds a third part, unchanged", input: "512MiB / N/A", want: "512MiB / N/A"},
		{name: "NA limit degrades to zero", input: "512MiB / NA", want: "512.0MiB / 0.0MiB"},
		{name: "single part unchanged", input: "512MiB", want: "512MiB"},
		{name: "empty string unchanged", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReformatMemUsage(tt.input))
		})
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "docker CreatedAt", input: "2024-01-05 13:45:02 +0000 UTC", want: "2024-01-05 13:45"},
		{name: "bare timestamp", input: "2024-01-05 13:45:02", want: "2024-01-05 13:45"},
		{name: "leading whitespace", input: "  2024-01-05 13:45:02", want: "2024-01-05 13:45"},
		{name: "malformed returns original", input: "yesterday", want: "yesterday"},
		{name: "too short returns original", input: "2024-01-05", want: "2024-01-05"},
		{name: "empty returns original", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTimestamp(tt.input))
		})
	}
}
