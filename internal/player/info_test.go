package player

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProbeWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	writeWAV(t, path, 22050)

	info, err := Probe(path)
	if err != nil {
		t.Fatalf("Ошибка получения информации: %v", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Ошибка stat: %v", err)
	}
	if info.Size != stat.Size() {
		t.Errorf("Ожидался размер %d, получено %d", stat.Size(), info.Size)
	}
	// writeWAV пишет десятую долю секунды
	if info.Duration != 100*time.Millisecond {
		t.Errorf("Ожидалась длительность 100ms, получено %v", info.Duration)
	}
}

func TestProbeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Probe(filepath.Join(dir, "missing.mp3")); err == nil {
		t.Error("Ожидалась ошибка для отсутствующего файла")
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("text"), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}
	if _, err := Probe(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Ожидалась ErrUnsupportedFormat, получено %v", err)
	}
}
