package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "zero seconds",
			input: "PT0S",
			want:  0,
		},
		{
			name:  "seconds only",
			input: "PT45S",
			want:  45 * time.Second,
		},
		{
			name:  "minutes and seconds",
			input: "PT1M30S",
			want:  90 * time.Second,
		},
		{
			name:  "hours only",
			input: "PT2H",
			want:  2 * time.Hour,
		},
		{
			name:  "hours minutes seconds",
			input: "PT4M13S",
			want:  4*time.Minute + 13*time.Second,
		},
		{
			name:  "day carries into total",
			input: "P1DT1H",
			want:  25 * time.Hour,
		},
		{
			name:  "days only",
			input: "P2D",
			want:  48 * time.Hour,
		},
		{
			name:  "weeks",
			input: "P1W",
			want:  7 * 24 * time.Hour,
		},
		{
			name:  "fractional seconds with dot",
			input: "PT0.5S",
			want:  500 * time.Millisecond,
		},
		{
			name:  "fractional seconds with comma",
			input: "PT1,5S",
			want:  1500 * time.Millisecond,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "missing P prefix",
			input:   "T1M",
			wantErr: true,
		},
		{
			name:    "bare P",
			input:   "P",
			wantErr: true,
		},
		{
			name:    "trailing T with no components",
			input:   "P1DT",
			wantErr: true,
		},
		{
			name:    "number without designator",
			input:   "PT15",
			wantErr: true,
		},
		{
			name:    "year designator rejected",
			input:   "P1Y",
			wantErr: true,
		},
		{
			name:    "time designator in date part",
			input:   "P1H",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "fifteen minutes",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	// The conversion the transformation relies on: fractional minutes
	// retained, day carry included.
	tests := []struct {
		input string
		want  float64
	}{
		{"PT0S", 0.0},
		{"PT45S", 0.75},
		{"PT1M30S", 1.5},
		{"PT2H", 120.0},
		{"PT15M33S", 15.55},
		{"P1DT1H", 1500.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d.Minutes(), 1e-9)
		})
	}
}
