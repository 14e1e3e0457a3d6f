package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/passport/internal/core/kv"
)

const (
	debounceDelay   = 50 * time.Millisecond
	eventBufferSize = 100
)

// KeyWatcher watches a KVStore directory for key files changed by other
// processes.
type KeyWatcher struct {
	dir     string
	watcher *fsnotify.Watcher
	log     zerolog.Logger

	mu          sync.Mutex
	subscribers map[string][]chan kv.Event // pattern -> channels
	debounce    map[string]*time.Timer     // key -> debounce timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ kv.Watcher = (*KeyWatcher)(nil)

// NewKeyWatcher creates a watcher for dir. The directory is created if it
// doesn't exist.
func NewKeyWatcher(dir string) (*KeyWatcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	kw := &KeyWatcher{
		dir:         dir,
		watcher:     watcher,
		log:         log.With().Str("component", "kv-watcher").Logger(),
		subscribers: make(map[string][]chan kv.Event),
		debounce:    make(map[string]*time.Timer),
		ctx:         ctx,
		cancel:      cancel,
	}

	kw.wg.Add(1)
	go kw.run()

	return kw, nil
}

// Watch returns a channel that receives events for keys matching pattern.
// Patterns use doublestar glob syntax; "" and "*" match every key.
func (kw *KeyWatcher) Watch(ctx context.Context, pattern string) (<-chan kv.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	ch := make(chan kv.Event, eventBufferSize)

	kw.mu.Lock()
	kw.subscribers[pattern] = append(kw.subscribers[pattern], ch)
	kw.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			kw.unsubscribe(pattern, ch)
		case <-kw.ctx.Done():
		}
	}()

	return ch, nil
}

// Close stops watching and closes all subscriber channels.
func (kw *KeyWatcher) Close() error {
	kw.cancel()

	kw.mu.Lock()
	for _, timer := range kw.debounce {
		timer.Stop()
	}
	for _, subs := range kw.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	kw.subscribers = make(map[string][]chan kv.Event)
	kw.mu.Unlock()

	err := kw.watcher.Close()
	kw.wg.Wait()
	return err
}

func (kw *KeyWatcher) unsubscribe(pattern string, ch chan kv.Event) {
	kw.mu.Lock()
	defer kw.mu.Unlock()

	subs := kw.subscribers[pattern]
	for i, sub := range subs {
		if sub == ch {
			kw.subscribers[pattern] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
	if len(kw.subscribers[pattern]) == 0 {
		delete(kw.subscribers, pattern)
	}
}

func (kw *KeyWatcher) run() {
	defer kw.wg.Done()

	for {
		select {
		case <-kw.ctx.Done():
			return
		case event, ok := <-kw.watcher.Events:
			if !ok {
				return
			}
			kw.handleEvent(event)
		case err, ok := <-kw.watcher.Errors:
			if !ok {
				return
			}
			kw.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (kw *KeyWatcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	filename := filepath.Base(event.Name)
	if !strings.HasSuffix(filename, fileExt) {
		return
	}

	key := keyFromFilename(filename)

	kw.mu.Lock()
	defer kw.mu.Unlock()
	if kw.ctx.Err() != nil {
		return
	}
	if timer, exists := kw.debounce[key]; exists {
		timer.Stop()
	}
	kw.debounce[key] = time.AfterFunc(debounceDelay, func() {
		kw.notifySubscribers(key)
	})
}

func (kw *KeyWatcher) notifySubscribers(key string) {
	event := kv.Event{Key: key, Timestamp: time.Now()}

	kw.mu.Lock()
	defer kw.mu.Unlock()

	delete(kw.debounce, key)
	if kw.ctx.Err() != nil {
		return
	}

	for pattern, subs := range kw.subscribers {
		if !matchesPattern(pattern, key) {
			continue
		}
		for _, ch := range subs {
			select {
			case ch <- event:
			default:
				kw.log.Debug().Str("key", key).Msg("subscriber full, dropping event")
			}
		}
	}
}

func matchesPattern(pattern, key string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	ok, err := doublestar.Match(pattern, key)
	return err == nil && ok
}
