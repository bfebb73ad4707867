package nowplaying

import (
	"strings"
	"testing"
)

func TestNewModel(t *testing.T) {
	model := NewModel(100)

	if model.Label() != Placeholder {
		t.Errorf("Expected placeholder label, got %q", model.Label())
	}
	if model.Highlighted() {
		t.Error("Expected label not to be highlighted initially")
	}
	if model.PlayIcon() != "▶" {
		t.Errorf("Expected play icon, got %q", model.PlayIcon())
	}
	if model.Volume() != 100 {
		t.Errorf("Expected volume 100, got %d", model.Volume())
	}
}

func TestSetTrack(t *testing.T) {
	model := NewModel(100)

	model.SetTrack("song.mp3", true)
	model.SetPlaying(true)
	if model.Label() != "song.mp3" || !model.Highlighted() {
		t.Errorf("Unexpected label state: %q %v", model.Label(), model.Highlighted())
	}
	if model.PlayIcon() != "⏸" {
		t.Errorf("Expected pause icon while playing, got %q", model.PlayIcon())
	}

	// Пауза: надпись остается, выделение снимается
	model.SetTrack("song.mp3", false)
	model.SetPlaying(false)
	if model.Label() != "song.mp3" || model.Highlighted() {
		t.Errorf("Unexpected paused label state: %q %v", model.Label(), model.Highlighted())
	}

	model.SetTrack("", false)
	if model.Label() != Placeholder {
		t.Errorf("Expected placeholder after reset, got %q", model.Label())
	}
}

func TestView(t *testing.T) {
	model := NewModel(35)
	model.SetWidth(80)
	model.SetTrack("track.wav", true)

	view := model.View()
	for _, expected := range []string{"track.wav", "35%", "▶"} {
		if !strings.Contains(view, expected) {
			t.Errorf("Expected view to contain %q: %s", expected, view)
		}
	}
}
