// Package controller связывает события интерфейса с плейлистом и аудиодвижком
package controller

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hazadus/go-tunes/internal/playlist"
)

// DefaultVolume громкость при запуске
const DefaultVolume = 100

var (
	// ErrEmptyPlaylist возвращается при навигации по пустому плейлисту
	ErrEmptyPlaylist = errors.New("плейлист пуст")
	// ErrNoSelection возвращается, если для запуска не выбран трек
	ErrNoSelection = errors.New("сначала выберите трек")
)

// PlaybackError описывает сбой движка при загрузке или запуске трека
type PlaybackError struct {
	Path string
	Err  error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("не удалось воспроизвести %s: %v", playlist.DisplayName(e.Path), e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Engine описывает команды аудиодвижка. Все команды неблокирующие.
type Engine interface {
	Init() error
	Load(path string) error
	Play() error
	Pause()
	Resume()
	Stop()
	SetVolume(gain float64)
}

// View описывает возможности интерфейса, которыми пользуется контроллер
type View interface {
	// DisplayTrackList показывает имена треков по порядку
	DisplayTrackList(names []string)
	// SelectedIndex возвращает выбранный в списке индекс или -1
	SelectedIndex() int
	// SetNowPlaying обновляет надпись "сейчас играет" и ее выделение.
	// Пустое имя означает, что трек не выбран.
	SetNowPlaying(name string, playing bool)
	// SetTransportIcon переключает иконку воспроизведения/паузы
	SetTransportIcon(playing bool)
	// PromptFileSelection открывает выбор файлов; done вызывается в потоке интерфейса
	PromptFileSelection(extensions []string, done func(paths []string))
	// ShowWarning показывает предупреждение
	ShowWarning(message string)
}

// State снимок состояния плеера
type State struct {
	Current string // пусто, если трек не выбран
	Playing bool
	Volume  int
}

// Controller владеет плейлистом и движком. Все методы вызываются
// из одного потока событий интерфейса, поэтому блокировки не нужны.
type Controller struct {
	store            *playlist.Store
	engine           Engine
	view             View
	log              *zap.Logger
	importExtensions []string

	current string
	playing bool
	volume  int

	// anchor трек, на котором упало воспроизведение. Навигация
	// из Idle продолжается от него, а не от начала плейлиста.
	anchor string
}

// New создает контроллер в состоянии (нет трека, не играет, громкость 100)
func New(store *playlist.Store, engine Engine, view View, log *zap.Logger, importExtensions []string) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:            store,
		engine:           engine,
		view:             view,
		log:              log,
		importExtensions: importExtensions,
		volume:           DefaultVolume,
	}
}

// Start инициализирует движок и показывает плейлист
func (c *Controller) Start() error {
	if err := c.engine.Init(); err != nil {
		return fmt.Errorf("ошибка инициализации движка: %w", err)
	}
	c.refreshTrackList()
	c.resetView()
	return nil
}

// State возвращает снимок текущего состояния
func (c *Controller) State() State {
	return State{Current: c.current, Playing: c.playing, Volume: c.volume}
}

// Previous переходит к предыдущему треку по кругу
func (c *Controller) Previous() error {
	if c.store.Len() == 0 {
		return c.warn("previous", ErrEmptyPlaylist)
	}

	index := c.position(0)
	return c.playTrack(wrap(index-1, c.store.Len()))
}

// Next переходит к следующему треку по кругу
func (c *Controller) Next() error {
	if c.store.Len() == 0 {
		return c.warn("next", ErrEmptyPlaylist)
	}

	index := c.position(-1)
	return c.playTrack(wrap(index+1, c.store.Len()))
}

// PlayOrPause запускает выбранный трек, если ничего не играет,
// иначе переключает паузу без перезагрузки трека
func (c *Controller) PlayOrPause() error {
	if c.current == "" {
		return c.PlaySelected()
	}

	if c.playing {
		c.engine.Pause()
		c.playing = false
		c.log.Debug("пауза", zap.String("track", c.current))
	} else {
		c.engine.Resume()
		c.playing = true
		c.log.Debug("возобновление", zap.String("track", c.current))
	}

	c.view.SetTransportIcon(c.playing)
	c.view.SetNowPlaying(playlist.DisplayName(c.current), c.playing)
	return nil
}

// PlaySelected запускает трек, выбранный в списке, всегда перезагружая его
func (c *Controller) PlaySelected() error {
	index := c.view.SelectedIndex()
	if index < 0 || index >= c.store.Len() {
		return c.warn("play", ErrNoSelection)
	}
	return c.playTrack(index)
}

// Stop останавливает воспроизведение и сбрасывает текущий трек.
// Громкость сохраняется.
func (c *Controller) Stop() {
	c.engine.Stop()
	c.current = ""
	c.playing = false
	c.anchor = ""
	c.resetView()
	c.log.Debug("остановка")
}

// SetVolume задает громкость 0-100. Значения вне диапазона ограничиваются.
func (c *Controller) SetVolume(level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	c.volume = level
	c.engine.SetVolume(float64(level) / 100)
	c.log.Debug("громкость", zap.Int("level", level))
}

// AddFiles открывает выбор файлов и добавляет выбранные в плейлист
func (c *Controller) AddFiles() {
	c.view.PromptFileSelection(c.importExtensions, func(paths []string) {
		c.Add(paths)
	})
}

// Add добавляет файлы в плейлист. Каждая ошибка копирования
// показывается отдельным предупреждением и возвращается вызывающему.
func (c *Controller) Add(paths []string) []error {
	if len(paths) == 0 {
		return nil
	}

	errs := c.store.Add(paths)
	c.refreshTrackList()
	for _, err := range errs {
		c.warn("add", err)
	}
	return errs
}

// playTrack загружает и запускает трек по индексу.
// Индекс обязан быть в диапазоне плейлиста.
func (c *Controller) playTrack(index int) error {
	path := c.store.At(index)

	if err := c.engine.Load(path); err != nil {
		return c.playbackFailed(path, err)
	}
	if err := c.engine.Play(); err != nil {
		return c.playbackFailed(path, err)
	}

	c.current = path
	c.playing = true
	c.anchor = ""
	c.view.SetTransportIcon(true)
	c.view.SetNowPlaying(playlist.DisplayName(path), true)
	c.log.Info("воспроизведение", zap.Int("index", index), zap.String("track", path))
	return nil
}

// playbackFailed возвращает плеер в исходное состояние и сообщает об ошибке
func (c *Controller) playbackFailed(path string, err error) error {
	c.engine.Stop()
	c.current = ""
	c.playing = false
	c.anchor = path
	c.resetView()
	return c.warn("play", &PlaybackError{Path: path, Err: err})
}

// position возвращает индекс, от которого считается переход:
// текущий трек, затем упавший трек, иначе base
func (c *Controller) position(base int) int {
	for _, path := range []string{c.current, c.anchor} {
		if path == "" {
			continue
		}
		if index := c.store.IndexOf(path); index >= 0 {
			return index
		}
	}
	return base
}

func (c *Controller) refreshTrackList() {
	c.view.DisplayTrackList(c.store.DisplayNames())
}

func (c *Controller) resetView() {
	c.view.SetTransportIcon(false)
	c.view.SetNowPlaying("", false)
}

func (c *Controller) warn(op string, err error) error {
	c.log.Warn("предупреждение", zap.String("op", op), zap.Error(err))
	c.view.ShowWarning(capitalize(err.Error()))
	return err
}

// wrap приводит индекс к диапазону [0, n) с учетом отрицательных значений
func wrap(index, n int) int {
	return ((index % n) + n) % n
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
