// Package playlist содержит хранилище плейлиста, построенного по управляемой директории
package playlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrSameFile возвращается при попытке скопировать файл самого в себя
var ErrSameFile = errors.New("файл уже находится в управляемой директории")

// CopyError описывает неудачное копирование файла при добавлении
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("не удалось скопировать %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Store хранит упорядоченный список путей к трекам.
// Порядок: результат сканирования, затем добавленные пользователем файлы.
// Дубликаты не удаляются.
type Store struct {
	dir        string
	extensions []string
	tracks     []string
	log        *zap.Logger
}

// NewStore создает хранилище для управляемой директории dir.
// extensions задает расширения файлов, попадающих в плейлист при сканировании.
func NewStore(dir string, extensions []string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = strings.ToLower(ext)
	}
	return &Store{
		dir:        dir,
		extensions: exts,
		tracks:     make([]string, 0),
		log:        log,
	}
}

// Dir возвращает путь к управляемой директории
func (s *Store) Dir() string {
	return s.dir
}

// Scan перечитывает управляемую директорию и заменяет содержимое плейлиста.
// Отсутствующая директория создается, пустая дает пустой плейлист.
func (s *Store) Scan() ([]string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", s.dir, err)
	}

	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка определения пути %s: %w", s.dir, err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", absDir, err)
	}

	tracks := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !s.supported(entry.Name()) {
			continue
		}
		tracks = append(tracks, filepath.Join(absDir, entry.Name()))
	}

	s.tracks = tracks
	s.log.Info("директория просканирована",
		zap.String("dir", absDir),
		zap.Int("tracks", len(tracks)))

	return s.Tracks(), nil
}

// Add копирует файлы в управляемую директорию и добавляет их в плейлист.
// В плейлист попадает исходный путь, а не копия, причем независимо от
// успеха копирования. Относительные пути приводятся к абсолютным.
// Для каждого неудачного копирования возвращается *CopyError с путем в том
// виде, в котором он был передан.
func (s *Store) Add(paths []string) []error {
	var errs []error

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.log.Warn("не удалось создать управляемую директорию", zap.String("dir", s.dir), zap.Error(err))
	}

	for _, path := range paths {
		track, err := filepath.Abs(path)
		if err != nil {
			track = path
		}
		s.tracks = append(s.tracks, track)

		destination := filepath.Join(s.dir, filepath.Base(path))
		if err := copyFile(path, destination); err != nil {
			copyErr := &CopyError{Path: path, Err: err}
			s.log.Warn("ошибка копирования файла", zap.String("path", path), zap.Error(err))
			errs = append(errs, copyErr)
			continue
		}
		s.log.Info("файл добавлен", zap.String("path", path), zap.String("copy", destination))
	}

	return errs
}

// Tracks возвращает копию текущего плейлиста
func (s *Store) Tracks() []string {
	out := make([]string, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// Len возвращает количество треков в плейлисте
func (s *Store) Len() int {
	return len(s.tracks)
}

// At возвращает трек по индексу. Индекс вне диапазона - ошибка программиста.
func (s *Store) At(index int) string {
	return s.tracks[index]
}

// IndexOf возвращает индекс первого вхождения пути или -1
func (s *Store) IndexOf(path string) int {
	for i, track := range s.tracks {
		if track == path {
			return i
		}
	}
	return -1
}

// DisplayNames возвращает отображаемые имена всех треков по порядку
func (s *Store) DisplayNames() []string {
	names := make([]string, len(s.tracks))
	for i, track := range s.tracks {
		names[i] = DisplayName(track)
	}
	return names
}

// DisplayName возвращает имя трека для отображения: последний сегмент пути
func DisplayName(path string) string {
	return filepath.Base(path)
}

func (s *Store) supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range s.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// copyFile копирует содержимое и права доступа src в dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s является директорией", src)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return ErrSameFile
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
