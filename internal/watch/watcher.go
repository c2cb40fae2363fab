// Package watch posts blockchain information files dropped into a directory.
package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/blockinfo/pkg/client"
	"github.com/bft-labs/blockinfo/pkg/log"
)

// DefaultDebounce coalesces the burst of events an editor or copy produces.
const DefaultDebounce = 100 * time.Millisecond

// Poster sends one params object. *client.Client satisfies it.
type Poster interface {
	AddBlockchainInformation(ctx context.Context, params client.Params, bearerToken string) (any, error)
}

// Config controls a Watcher.
type Config struct {
	// Dir is the directory to watch. Only *.json files are considered.
	Dir string

	// Token is forwarded as the bearer token of every post.
	Token string

	// Backfill posts the *.json files already in Dir before watching.
	Backfill bool

	// Debounce is the quiet period per file before it is posted.
	Debounce time.Duration
}

// Watcher posts each *.json file created or rewritten in a directory.
type Watcher struct {
	cfg    Config
	poster Poster
	logger log.Logger

	ready chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher. Run starts it.
func New(cfg Config, poster Poster, logger log.Logger) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("watch dir is required")
	}
	if poster == nil {
		return nil, fmt.Errorf("poster is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:    cfg,
		poster: poster,
		logger: logger,
		ready:  make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Ready is closed once the directory is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches Dir until ctx is cancelled. Bad files and failed posts are
// logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}
	close(w.ready)
	defer w.stopTimers()

	w.logger.Info("watching for params files", log.String("dir", w.cfg.Dir))

	if w.cfg.Backfill {
		if err := w.backfill(ctx); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isParamsFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounce(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

// PostFile decodes path as a JSON object and posts it.
func (w *Watcher) PostFile(ctx context.Context, path string) (any, error) {
	params, err := readParams(path)
	if err != nil {
		return nil, err
	}
	resp, err := w.poster.AddBlockchainInformation(ctx, params, w.cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", filepath.Base(path), err)
	}
	return resp, nil
}

func (w *Watcher) backfill(ctx context.Context) error {
	matches, err := filepath.Glob(filepath.Join(w.cfg.Dir, "*.json"))
	if err != nil {
		return fmt.Errorf("list %s: %w", w.cfg.Dir, err)
	}
	sort.Strings(matches)
	for _, path := range matches {
		if ctx.Err() != nil {
			return nil
		}
		if !isParamsFile(path) {
			continue
		}
		w.post(ctx, path)
	}
	return nil
}

func (w *Watcher) debounce(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(w.cfg.Debounce, func() {
		w.mu.Lock()
		// A newer event may already have replaced this timer.
		if w.timers[path] == timer {
			delete(w.timers, path)
		}
		w.mu.Unlock()
		w.post(ctx, path)
	})
	w.timers[path] = timer
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

func (w *Watcher) post(ctx context.Context, path string) {
	start := time.Now()
	resp, err := w.PostFile(ctx, path)
	if err != nil {
		w.logger.Error("params file not posted", log.String("file", path), log.Err(err))
		return
	}
	w.logger.Info("params file posted",
		log.String("file", path),
		log.Duration("took", time.Since(start)),
	)
	w.logger.Debug("params file response", log.String("file", path), log.Any("response", resp))
}

func readParams(path string) (client.Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var params client.Params
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if params == nil {
		return nil, fmt.Errorf("decode %s: expected a JSON object", filepath.Base(path))
	}
	return params, nil
}

func isParamsFile(name string) bool {
	base := filepath.Base(name)
	return strings.EqualFold(filepath.Ext(base), ".json") && !strings.HasPrefix(base, ".")
}
