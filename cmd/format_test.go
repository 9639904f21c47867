package cmd

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/jfmyers9/riptide/pkg/tidal"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "handle unicode characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate unicode text",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語... ", // 日本語 is 6 columns, ... is 3, need 1 space
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			// Verify the result has the expected display width (if width > 0)
			if tt.width > 0 {
				resultWidth := runewidth.StringWidth(result)
				if resultWidth != tt.width {
					t.Errorf("padToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, resultWidth, tt.width)
				}
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{seconds: 0, expected: "0:00"},
		{seconds: 59, expected: "0:59"},
		{seconds: 60, expected: "1:00"},
		{seconds: 223, expected: "3:43"},
		{seconds: 3600, expected: "60:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.expected {
			t.Errorf("formatDuration(%d) = %q, expected %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestTrackArtist(t *testing.T) {
	name := "Trivium"
	other := "Other"

	tests := []struct {
		name     string
		track    tidal.Track
		expected string
	}{
		{
			name:     "no artist information",
			track:    tidal.Track{},
			expected: "-",
		},
		{
			name:     "single artist field preferred",
			track:    tidal.Track{Artist: &tidal.Artist{Name: &name}, Artists: []tidal.Artist{{Name: &other}}},
			expected: "Trivium",
		},
		{
			name:     "falls back to artists list",
			track:    tidal.Track{Artists: []tidal.Artist{{Name: &other}}},
			expected: "Other",
		},
		{
			name:     "artist without name",
			track:    tidal.Track{Artist: &tidal.Artist{}},
			expected: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trackArtist(tt.track); got != tt.expected {
				t.Errorf("trackArtist() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
