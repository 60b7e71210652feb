package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"vlist/internal/domain"
	"vlist/internal/eventbus"
)

// DefaultGeneratedCount is the number of demo items when no input is given
const DefaultGeneratedCount = 21

// reloadDebounce collapses the burst of events editors produce on save
const reloadDebounce = 100 * time.Millisecond

var itemNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("vlist:item"))

// SourceService produces the browsed items
type SourceService interface {
	Info() domain.SourceInfo
	Load(ctx context.Context) error
	Watch(ctx context.Context) error
	Stop()
}

// ItemID derives a stable ID from the item text and how often the same text
// appeared before it, so marks survive reloads of an unchanged line.
func ItemID(text string, occurrence int) string {
	return uuid.NewSHA1(itemNamespace, []byte(fmt.Sprintf("%s\x00%d", text, occurrence))).String()
}

// ParseItems reads one item per non-empty line
func ParseItems(r io.Reader) ([]domain.Item, error) {
	var items []domain.Item
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:   ItemID(text, seen[text]),
			Text: text,
			Line: line,
		})
		seen[text]++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// GenerateItems builds count demo items
func GenerateItems(count int) []domain.Item {
	items := make([]domain.Item, 0, max(count, 0))
	for i := 0; i < count; i++ {
		text := fmt.Sprintf("This is item: %d", i)
		items = append(items, domain.Item{ID: ItemID(text, 0), Text: text})
	}
	return items
}

// generatedSource serves a fixed list of demo items
type generatedSource struct {
	bus   eventbus.EventBus
	count int
}

// NewGeneratedSource creates a source of count demo items
func NewGeneratedSource(bus eventbus.EventBus, count int) SourceService {
	gs := &generatedSource{bus: bus, count: count}
	bus.Subscribe(eventbus.EventReloadRequested, func(eventbus.DomainEvent) {
		_ = gs.Load(context.Background())
	})
	return gs
}

func (gs *generatedSource) Info() domain.SourceInfo {
	return domain.SourceInfo{Name: "generated"}
}

func (gs *generatedSource) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gs.bus.Publish(eventbus.ItemsLoadedEvent{Source: "generated", Items: GenerateItems(gs.count)})
	return nil
}

func (gs *generatedSource) Watch(context.Context) error {
	return nil
}

func (gs *generatedSource) Stop() {}

// fileSource reads items from a file and optionally follows changes to it
type fileSource struct {
	bus      eventbus.EventBus
	path     string
	mu       sync.Mutex
	watching bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewFileSource creates a source reading path
func NewFileSource(bus eventbus.EventBus, path string) SourceService {
	fs := &fileSource{bus: bus, path: path}

	bus.Subscribe(eventbus.EventReloadRequested, func(eventbus.DomainEvent) {
		if err := fs.reload(true); err != nil {
			log.Warn("source: reload failed", "path", fs.path, "err", err)
		}
	})

	return fs
}

func (fs *fileSource) Info() domain.SourceInfo {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return domain.SourceInfo{Name: fs.path, Watching: fs.watching}
}

// Load reads the file once and publishes its items
func (fs *fileSource) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fs.reload(false)
}

func (fs *fileSource) reload(isReload bool) error {
	f, err := os.Open(fs.path)
	if err != nil {
		err = fmt.Errorf("failed to open %s: %w", fs.path, err)
		fs.bus.Publish(eventbus.ErrorEvent{Message: "cannot read input", Err: err})
		return err
	}
	defer f.Close()

	items, err := ParseItems(f)
	if err != nil {
		fs.bus.Publish(eventbus.ErrorEvent{Message: "cannot read input", Err: err})
		return err
	}

	log.Info("source: loaded items", "path", fs.path, "count", len(items), "reload", isReload)
	fs.bus.Publish(eventbus.ItemsLoadedEvent{Source: fs.path, Items: items, Reload: isReload})
	return nil
}

// Watch reloads the file whenever it is written, created or replaced.
// The parent directory is watched so editors that save by rename still work.
func (fs *fileSource) Watch(ctx context.Context) error {
	fs.mu.Lock()
	if fs.watching {
		fs.mu.Unlock()
		return fmt.Errorf("already watching %s", fs.path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fs.mu.Unlock()
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(fs.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		fs.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	fs.cancel = cancel
	fs.watching = true
	fs.mu.Unlock()

	fs.bus.Publish(eventbus.WatchStartedEvent{Path: fs.path})

	fs.wg.Add(1)
	go func() {
		defer fs.wg.Done()
		defer watcher.Close()
		defer func() {
			fs.mu.Lock()
			fs.watching = false
			fs.cancel = nil
			fs.mu.Unlock()
		}()
		fs.watchLoop(watchCtx, watcher)
	}()
	return nil
}

func (fs *fileSource) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	target := filepath.Clean(fs.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			log.Debug("source: change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := fs.reload(true); err != nil {
				log.Warn("source: reload failed", "path", fs.path, "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("source: watcher error", "err", err)
			fs.bus.Publish(eventbus.ErrorEvent{Message: "file watcher failed", Err: err})
		}
	}
}

// Stop ends watching and waits for the watcher goroutine
func (fs *fileSource) Stop() {
	fs.mu.Lock()
	if fs.cancel != nil {
		fs.cancel()
	}
	fs.mu.Unlock()

	fs.wg.Wait()
}
