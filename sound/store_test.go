package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

// --- Test doubles ---

type fakeSound struct {
	name     string
	disposed int
	stopped  int
	played   []float64
	fail     error
	panicMsg string
}

func (f *fakeSound) Play(volume float64) { f.played = append(f.played, volume) }
func (f *fakeSound) Stop()               { f.stopped++ }

func (f *fakeSound) Dispose() error {
	f.disposed++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.fail
}

type fakeLoader struct {
	mu     sync.Mutex
	calls  map[string]int
	sounds map[string]*fakeSound
	fail   map[string]error
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		calls:  map[string]int{},
		sounds: map[string]*fakeSound{},
		fail:   map[string]error{},
	}
}

func (l *fakeLoader) Load(fsys fs.FS, name string) (Sound, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[name]++
	if err := l.fail[name]; err != nil {
		return nil, err
	}
	if _, err := fs.ReadFile(fsys, name); err != nil {
		return nil, err
	}
	s := &fakeSound{name: name}
	l.sounds[name] = s
	return s, nil
}

func (l *fakeLoader) callCount(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) Printf(format string, v ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) contains(sub string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func newTestStore(fsys fstest.MapFS) (*Store, *fakeLoader, *recordingLogger) {
	loader := newFakeLoader()
	logger := &recordingLogger{}
	s := NewStore(Config{
		FS:     fsys,
		Path:   ExtensionPath("sfx", ".wav"),
		Loader: loader,
		Logger: logger,
	})
	return s, loader, logger
}

func wavFile() *fstest.MapFile {
	return &fstest.MapFile{Data: make([]byte, 2048)}
}

// --- Get ---

func TestGetCachesIdentity(t *testing.T) {
	s, loader, logger := newTestStore(fstest.MapFS{"sfx/hit.wav": wavFile()})

	first, ok := s.Get("hit")
	if !ok {
		t.Fatal("first Get reported not found")
	}
	second, ok := s.Get("hit")
	if !ok {
		t.Fatal("second Get reported not found")
	}
	if first != second {
		t.Error("second Get returned a different handle")
	}
	if n := loader.callCount("sfx/hit.wav"); n != 1 {
		t.Errorf("loader called %d times, want 1", n)
	}
	if !logger.contains("loading sfx/hit.wav (2.0 kB)") {
		t.Errorf("missing load log, got %v", logger.lines)
	}
}

func TestGetMissIsNotCached(t *testing.T) {
	fsys := fstest.MapFS{}
	s, loader, _ := newTestStore(fsys)

	if _, ok := s.Get("late"); ok {
		t.Fatal("Get of missing file reported found")
	}
	if _, ok := s.Get("late"); ok {
		t.Fatal("second Get of still-missing file reported found")
	}
	if s.Has("late") || s.Len() != 0 {
		t.Error("miss was cached")
	}
	if n := loader.callCount("sfx/late.wav"); n != 0 {
		t.Errorf("loader called %d times for missing file", n)
	}

	fsys["sfx/late.wav"] = wavFile()
	if _, ok := s.Get("late"); !ok {
		t.Error("Get after the file appeared reported not found")
	}
}

func TestGetEmptyIdentifier(t *testing.T) {
	s, _, logger := newTestStore(fstest.MapFS{})
	snd, ok := s.Get("")
	if ok || snd != nil {
		t.Errorf("Get(\"\") = %v, %v; want nil, false", snd, ok)
	}
	if !logger.contains("empty sound identifier") {
		t.Errorf("empty identifier not logged: %v", logger.lines)
	}
}

func TestGetLoadFailureIsLoggedNotCached(t *testing.T) {
	s, loader, logger := newTestStore(fstest.MapFS{"sfx/bad.wav": wavFile()})
	loader.fail["sfx/bad.wav"] = errors.New("corrupt header")

	if _, ok := s.Get("bad"); ok {
		t.Fatal("Get of undecodable file reported found")
	}
	if !logger.contains("corrupt header") {
		t.Errorf("decode failure not logged: %v", logger.lines)
	}

	delete(loader.fail, "sfx/bad.wav")
	if _, ok := s.Get("bad"); !ok {
		t.Error("retry after fixing the file reported not found")
	}
}

func TestGetDirectoryIsNotFound(t *testing.T) {
	s, _, _ := newTestStore(fstest.MapFS{"sfx/dir.wav/inner": wavFile()})
	if _, ok := s.Get("dir"); ok {
		t.Error("Get of a directory reported found")
	}
}

func TestDefaultPathIsIdentifier(t *testing.T) {
	loader := newFakeLoader()
	s := NewStore(Config{FS: fstest.MapFS{"boom.ogg": wavFile()}, Loader: loader})
	if _, ok := s.Get("boom.ogg"); !ok {
		t.Fatal("Get with identity path reported not found")
	}
	if loader.callCount("boom.ogg") != 1 {
		t.Error("loader not called with the identifier")
	}
}

func TestNewStoreRequiresFSAndLoader(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no fs", Config{Loader: newFakeLoader()}},
		{"no loader", Config{FS: fstest.MapFS{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewStore(tt.cfg)
		})
	}
}

// --- Preload ---

func TestPreload(t *testing.T) {
	fsys := fstest.MapFS{
		"sfx/a.wav": wavFile(),
		"sfx/b.wav": wavFile(),
		"sfx/c.wav": wavFile(),
	}
	s, loader, _ := newTestStore(fsys)
	cached, _ := s.Get("a")

	err := s.Preload("a", "b", "b", "c", "missing", "")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	if again, _ := s.Get("a"); again != cached {
		t.Error("Preload replaced an already cached sound")
	}
	for _, name := range []string{"sfx/a.wav", "sfx/b.wav", "sfx/c.wav"} {
		if n := loader.callCount(name); n != 1 {
			t.Errorf("%s loaded %d times, want 1", name, n)
		}
	}
}

func TestPreloadJoinsErrors(t *testing.T) {
	fsys := fstest.MapFS{"sfx/ok.wav": wavFile(), "sfx/bad.wav": wavFile()}
	s, loader, _ := newTestStore(fsys)
	sentinel := errors.New("bad data")
	loader.fail["sfx/bad.wav"] = sentinel

	err := s.Preload("ok", "bad")
	if !errors.Is(err, sentinel) {
		t.Errorf("Preload error = %v, want wrapping %v", err, sentinel)
	}
	if !s.Has("ok") || s.Has("bad") {
		t.Errorf("Has(ok) = %v, Has(bad) = %v", s.Has("ok"), s.Has("bad"))
	}
}

// plainLogger takes no lock; any call from a worker goroutine shows up
// under the race detector.
type plainLogger []string

func (p *plainLogger) Printf(format string, v ...any) {
	*p = append(*p, fmt.Sprintf(format, v...))
}

func TestPreloadLogsFromCallingGoroutine(t *testing.T) {
	fsys := fstest.MapFS{}
	var ids []string
	for i := range 16 {
		id := fmt.Sprintf("s%02d", i)
		ids = append(ids, id)
		fsys["sfx/"+id+".wav"] = wavFile()
	}
	var logs plainLogger
	s := NewStore(Config{
		FS:          fsys,
		Path:        ExtensionPath("sfx", ".wav"),
		Loader:      newFakeLoader(),
		Logger:      &logs,
		Concurrency: 8,
	})

	if err := s.Preload(ids...); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if len(logs) != len(ids) {
		t.Fatalf("log lines = %d, want %d", len(logs), len(ids))
	}
	for _, l := range logs {
		if !strings.HasPrefix(l, "loading sfx/s") || !strings.Contains(l, "2.0 kB") {
			t.Errorf("unexpected log line %q", l)
		}
	}
}

// --- Dispose ---

func TestDisposeReleasesEverything(t *testing.T) {
	fsys := fstest.MapFS{"sfx/a.wav": wavFile(), "sfx/b.wav": wavFile(), "sfx/c.wav": wavFile()}
	s, loader, logger := newTestStore(fsys)
	for _, id := range []string{"a", "b", "c"} {
		if _, ok := s.Get(id); !ok {
			t.Fatalf("Get(%q) failed", id)
		}
	}
	loader.sounds["sfx/a.wav"].panicMsg = "driver gone"
	failure := errors.New("already closed")
	loader.sounds["sfx/b.wav"].fail = failure

	err := s.Dispose()
	if err == nil {
		t.Fatal("Dispose returned nil, want joined failures")
	}
	if !errors.Is(err, failure) {
		t.Errorf("Dispose error %v does not wrap %v", err, failure)
	}
	for name, snd := range loader.sounds {
		if snd.disposed != 1 {
			t.Errorf("%s disposed %d times, want 1", name, snd.disposed)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len after Dispose = %d", s.Len())
	}
	if !logger.contains("ignoring it") {
		t.Errorf("disposal failure not logged: %v", logger.lines)
	}

	if err := s.Dispose(); err != nil {
		t.Errorf("second Dispose = %v, want nil", err)
	}
}

// --- Formats ---

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := decodePCM(44100, "sfx/readme.txt", []byte("hello"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEbitenLoaderWithoutContext(t *testing.T) {
	_, err := EbitenLoader{}.Load(fstest.MapFS{"a.wav": wavFile()}, "a.wav")
	if err == nil {
		t.Error("Load without a context returned nil error")
	}
}

func TestExtensionPath(t *testing.T) {
	p := ExtensionPath("audio/sfx", ".ogg")
	if got := p("door_open"); got != "audio/sfx/door_open.ogg" {
		t.Errorf("path = %q", got)
	}
}
