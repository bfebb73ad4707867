package player

import (
	"fmt"
	"os"
	"time"
)

// FileInfo содержит информацию о файле трека
type FileInfo struct {
	Size     int64
	Duration time.Duration
}

// Probe возвращает размер и длительность трека, не загружая его в движок
func Probe(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	streamer, format, file, err := decode(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	defer streamer.Close()

	return &FileInfo{
		Size:     stat.Size(),
		Duration: format.SampleRate.D(streamer.Len()),
	}, nil
}
