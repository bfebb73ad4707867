// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-tunes/internal/utils"
)

const (
	// DefaultPath путь к файлу конфигурации по умолчанию
	DefaultPath = "~/.tunes"
	// MaxVolume верхняя граница громкости
	MaxVolume = 100
)

// Config структура для хранения конфигурации приложения
type Config struct {
	MusicDir         string   `yaml:"music_dir"`
	ScanExtensions   []string `yaml:"scan_extensions"`
	ImportExtensions []string `yaml:"import_extensions"`
	Volume           *int     `yaml:"volume"`
	LogFile          string   `yaml:"log_file"`
	LogLevel         string   `yaml:"log_level"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Файла нет - работаем на значениях по умолчанию
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitialVolume возвращает стартовую громкость в диапазоне 0-100
func (c *Config) InitialVolume() int {
	if c.Volume == nil {
		return MaxVolume
	}
	return ClampVolume(*c.Volume)
}

// ClampVolume ограничивает громкость диапазоном 0-100
func ClampVolume(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxVolume {
		return MaxVolume
	}
	return level
}

// applyDefaults заполняет незаданные поля и раскрывает тильду в путях
func (c *Config) applyDefaults() error {
	if c.MusicDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("ошибка определения рабочей директории: %w", err)
		}
		c.MusicDir = filepath.Join(wd, "music")
	}
	if len(c.ScanExtensions) == 0 {
		c.ScanExtensions = []string{".mp3"}
	}
	if len(c.ImportExtensions) == 0 {
		c.ImportExtensions = []string{".mp3", ".wav"}
	}
	if c.LogFile == "" {
		c.LogFile = "~/.tunes.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	var err error
	if c.MusicDir, err = utils.ExpandHome(c.MusicDir); err != nil {
		return err
	}
	if c.LogFile, err = utils.ExpandHome(c.LogFile); err != nil {
		return err
	}
	return nil
}
