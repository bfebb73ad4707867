// Package player содержит аудиодвижок для воспроизведения локальных файлов
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SampleRate частота дискретизации устройства вывода.
// Треки с другой частотой передискретизируются.
const SampleRate beep.SampleRate = 44100

const resampleQuality = 4

var (
	// ErrNotInitialized возвращается при воспроизведении до Init
	ErrNotInitialized = errors.New("аудиоустройство не инициализировано")
	// ErrNothingLoaded возвращается при воспроизведении без загруженного трека
	ErrNothingLoaded = errors.New("трек не загружен")
	// ErrUnsupportedFormat возвращается для файлов с неизвестным расширением
	ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла")
)

// Engine управляет единственным загруженным треком и устройством вывода.
// Команды не блокируются: воспроизведение идет в фоне внутри speaker.
type Engine struct {
	mutex         sync.Mutex
	isInitialized bool

	source   string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format

	ctrl   *beep.Ctrl
	gain   *effects.Gain
	volume float64 // 0.0 - 1.0
}

// NewEngine создает движок с полной громкостью
func NewEngine() *Engine {
	return &Engine{volume: 1}
}

// Init открывает устройство вывода. Повторный вызов ничего не делает.
func (e *Engine) Init() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.isInitialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("ошибка инициализации динамиков: %w", err)
	}
	e.isInitialized = true
	return nil
}

// Load открывает и декодирует файл, заменяя ранее загруженный трек.
// Текущее воспроизведение останавливается.
func (e *Engine) Load(path string) error {
	streamer, format, file, err := decode(path)
	if err != nil {
		return err
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.stopInternal()
	e.closeTrack()

	e.source = path
	e.file = file
	e.streamer = streamer
	e.format = format
	return nil
}

// Play запускает загруженный трек с начала
func (e *Engine) Play() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.isInitialized {
		return ErrNotInitialized
	}
	if e.streamer == nil {
		return ErrNothingLoaded
	}

	e.stopInternal()

	if err := e.streamer.Seek(0); err != nil {
		return fmt.Errorf("ошибка перемотки в начало: %w", err)
	}

	var s beep.Streamer = e.streamer
	if e.format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, e.format.SampleRate, SampleRate, s)
	}

	e.gain = &effects.Gain{Streamer: s, Gain: gainFor(e.volume)}
	e.ctrl = &beep.Ctrl{Streamer: e.gain, Paused: false}

	speaker.Play(e.ctrl)
	return nil
}

// Pause приостанавливает воспроизведение
func (e *Engine) Pause() {
	e.setPaused(true)
}

// Resume возобновляет воспроизведение после паузы
func (e *Engine) Resume() {
	e.setPaused(false)
}

// Stop останавливает воспроизведение. Трек остается загруженным.
func (e *Engine) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.stopInternal()
}

// SetVolume задает линейное усиление 0.0 - 1.0.
// Значение применяется сразу и сохраняется для следующих треков.
func (e *Engine) SetVolume(gain float64) {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.volume = gain
	if e.gain != nil {
		speaker.Lock()
		e.gain.Gain = gainFor(gain)
		speaker.Unlock()
	}
}

// Volume возвращает текущее линейное усиление
func (e *Engine) Volume() float64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.volume
}

// Loaded возвращает путь загруженного трека или пустую строку
func (e *Engine) Loaded() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.source
}

// IsPlaying возвращает true, если трек воспроизводится и не на паузе
func (e *Engine) IsPlaying() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.ctrl != nil && !e.ctrl.Paused
}

// Close останавливает воспроизведение и освобождает файл трека
func (e *Engine) Close() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.stopInternal()
	e.closeTrack()
	return nil
}

func (e *Engine) setPaused(paused bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.ctrl != nil {
		speaker.Lock()
		e.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (e *Engine) stopInternal() {
	if e.ctrl != nil {
		speaker.Clear()
		e.ctrl = nil
		e.gain = nil
	}
}

// closeTrack закрывает декодер и файл (должен вызываться под мьютексом)
func (e *Engine) closeTrack() {
	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.source = ""
}

// effects.Gain умножает сигнал на 1+Gain
func gainFor(volume float64) float64 {
	return volume - 1
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("ошибка декодирования %s: %w", strings.TrimPrefix(ext, "."), err)
	}

	return streamer, format, file, nil
}
