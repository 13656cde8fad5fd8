// Package sound loads audio clips on demand and caches them by identifier.
package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"

	"github.com/phanxgames/twig"
)

// Sound is a loaded, playable clip.
type Sound interface {
	Play(volume float64)
	Stop()
	Dispose() error
}

// Loader decodes the file at name in fsys into a Sound. Store.Preload calls
// Load from several goroutines at once.
type Loader interface {
	Load(fsys fs.FS, name string) (Sound, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(fsys fs.FS, name string) (Sound, error)

// Load calls f.
func (f LoaderFunc) Load(fsys fs.FS, name string) (Sound, error) { return f(fsys, name) }

// PathFunc maps an identifier to where it lives in the store's file system.
// It can return the identifier itself.
type PathFunc func(id string) string

// ExtensionPath returns a PathFunc placing identifiers in dir with the given
// extension, e.g. ExtensionPath("sfx", ".wav")("hit") is "sfx/hit.wav".
func ExtensionPath(dir, ext string) PathFunc {
	return func(id string) string {
		return path.Join(dir, id+ext)
	}
}

// ErrEmptyIdentifier is logged when Get is called with an empty identifier.
var ErrEmptyIdentifier = errors.New("sound: cannot play empty sound identifier")

// defaultConcurrency bounds Preload when Config.Concurrency is unset.
const defaultConcurrency = 4

// Config configures a Store.
type Config struct {
	// FS holds the audio files. Required.
	FS fs.FS
	// Path maps identifiers to names in FS. Defaults to the identifier itself.
	Path PathFunc
	// Loader decodes files. Required; see EbitenLoader.
	Loader Loader
	// Logger receives load messages and errors. May be nil. It is only called
	// from the goroutine using the Store.
	Logger twig.Logger
	// Concurrency bounds the number of files Preload decodes at once.
	Concurrency int
}

// Store maps identifiers to loaded sounds. A sound is loaded on its first
// successful lookup and kept until Dispose. Lookups of files that do not
// exist are not cached, so a file that appears later can still be loaded.
//
// Get and Dispose must be called from a single goroutine.
type Store struct {
	cfg    Config
	sounds map[string]Sound
}

// NewStore creates an empty store. Panics if cfg.FS or cfg.Loader is nil.
func NewStore(cfg Config) *Store {
	if cfg.FS == nil {
		panic("sound: Config.FS is nil")
	}
	if cfg.Loader == nil {
		panic("sound: Config.Loader is nil")
	}
	if cfg.Path == nil {
		cfg.Path = func(id string) string { return id }
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Store{cfg: cfg, sounds: make(map[string]Sound)}
}

// Get returns the sound for id, loading it on first use. It returns false
// when id is empty (logged as an error), when no file exists for id, or when
// decoding fails (logged). None of these outcomes is cached.
func (s *Store) Get(id string) (Sound, bool) {
	if id == "" {
		s.logf("%v", ErrEmptyIdentifier)
		return nil, false
	}
	if snd, ok := s.sounds[id]; ok {
		return snd, true
	}
	name := s.cfg.Path(id)
	info, ok := s.stat(name)
	if !ok {
		return nil, false
	}
	s.logLoading(name, info)
	snd, err := s.load(name)
	if err != nil {
		s.logf("%v", err)
		return nil, false
	}
	s.sounds[id] = snd
	return snd, true
}

// Preload loads every identifier not yet cached, decoding up to
// Config.Concurrency files at once. Missing files are skipped. The returned
// error joins every decode failure. Only the Loader runs on worker goroutines;
// the logger is called from the caller's goroutine.
func (s *Store) Preload(ids ...string) error {
	type job struct {
		id, name string
		snd      Sound
		err      error
	}
	seen := make(map[string]bool, len(ids))
	var jobs []*job
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := s.sounds[id]; ok {
			continue
		}
		name := s.cfg.Path(id)
		info, ok := s.stat(name)
		if !ok {
			continue
		}
		s.logLoading(name, info)
		jobs = append(jobs, &job{id: id, name: name})
	}

	swg := sizedwaitgroup.New(s.cfg.Concurrency)
	for _, j := range jobs {
		swg.Add()
		go func(j *job) {
			defer swg.Done()
			j.snd, j.err = s.load(j.name)
		}(j)
	}
	swg.Wait()

	var errs []error
	for _, j := range jobs {
		if j.err != nil {
			errs = append(errs, j.err)
			continue
		}
		s.sounds[j.id] = j.snd
	}
	return errors.Join(errs...)
}

// Len returns the number of cached sounds.
func (s *Store) Len() int {
	return len(s.sounds)
}

// Has reports whether id is cached.
func (s *Store) Has(id string) bool {
	_, ok := s.sounds[id]
	return ok
}

// Dispose releases every cached sound and empties the cache. A failure on one
// sound does not stop the others from being released; the returned error
// joins every failure.
func (s *Store) Dispose() error {
	ds := make([]twig.Disposable, 0, len(s.sounds))
	for _, snd := range s.sounds {
		ds = append(ds, snd)
	}
	clear(s.sounds)
	return twig.DisposeAll(s.cfg.Logger, ds...)
}

func (s *Store) stat(name string) (fs.FileInfo, bool) {
	info, err := fs.Stat(s.cfg.FS, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logf("sound: stat %s: %v", name, err)
		}
		return nil, false
	}
	if info.IsDir() {
		return nil, false
	}
	return info, true
}

func (s *Store) logLoading(name string, info fs.FileInfo) {
	s.logf("loading %s (%s)", name, humanize.Bytes(uint64(info.Size())))
}

// load must not log: Preload calls it concurrently.
func (s *Store) load(name string) (Sound, error) {
	snd, err := s.cfg.Loader.Load(s.cfg.FS, name)
	if err != nil {
		return nil, fmt.Errorf("sound: load %s: %w", name, err)
	}
	if snd == nil {
		return nil, fmt.Errorf("sound: load %s: loader returned no sound", name)
	}
	return snd, nil
}

func (s *Store) logf(format string, v ...any) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Printf(format, v...)
	}
}
