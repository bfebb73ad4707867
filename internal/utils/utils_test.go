package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10", 10, "exactly10"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"Зимний вечер.mp3", 9, "Зимний..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Домашняя директория недоступна: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/.tunes", filepath.Join(home, ".tunes")},
		{"~", home},
		{"/etc/tunes", "/etc/tunes"},
		{"music", "music"},
	}

	for _, test := range tests {
		result, err := ExpandHome(test.input)
		if err != nil {
			t.Fatalf("ExpandHome(%s) вернул ошибку: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("ExpandHome(%s) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{3*time.Minute + 7*time.Second, "03:07"},
		{75 * time.Minute, "75:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
