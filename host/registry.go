// Package host owns the set of loaded native modules and their
// instantiated plugins. It orchestrates the directory scan, the
// per-module ABI handshake and kind resolution, and symmetric teardown
// in reverse load order.
package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plugforge/plughost/hostapi"
	"github.com/plugforge/plughost/native"
)

// Config holds configuration for creating a new Registry.
type Config struct {
	// Dir is the plugin directory, scanned non-recursively.
	// Defaults to "plugins" relative to the working directory.
	Dir string

	Logger *zap.Logger

	// Opener defaults to the platform shared-object loader.
	Opener native.Opener

	// Sink receives messages plugins write through the host API.
	// Defaults to routing into Logger.
	Sink hostapi.Sink
}

// Registry owns every loaded Module and the singleton host API.
// Independent registries (one per test, say) are fully isolated.
type Registry struct {
	logger *zap.Logger
	opener native.Opener
	api    *hostapi.API
	dir    string

	// mu guards the module collection only; it is never held across a
	// module's lifetime or a call into plugin code.
	mu      sync.Mutex
	modules []*Module
}

// NewRegistry creates a registry. The host API is constructed here,
// before any module can be loaded, and never changes afterwards.
func NewRegistry(cfg Config) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Opener == nil {
		cfg.Opener = native.PlatformOpener()
	}
	if cfg.Dir == "" {
		cfg.Dir = "plugins"
	}
	if cfg.Sink == nil {
		cfg.Sink = &zapSink{logger: cfg.Logger.Named("plugin")}
	}

	return &Registry{
		logger: cfg.Logger,
		opener: cfg.Opener,
		api:    hostapi.New(cfg.Sink),
		dir:    cfg.Dir,
	}
}

// API returns the singleton callback surface injected into modules.
func (r *Registry) API() *hostapi.API { return r.api }

// Dir returns the configured plugin directory.
func (r *Registry) Dir() string { return r.dir }

// Init ensures the plugin directory exists, then loads every immediate
// entry in it. Per-module failures are logged and skipped; only a
// directory-level filesystem error fails Init itself.
func (r *Registry) Init() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("plugin directory %s: %w", r.dir, err)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("plugin directory %s: %w", r.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Rejections are classified and logged inside LoadPlugin; the
		// scan always continues.
		_, _ = r.LoadPlugin(filepath.Join(r.dir, entry.Name()))
	}
	return nil
}

// LoadPlugin opens one module file, runs the handshake, and registers
// the resolved plugin. It reports whether a record was registered. No
// partial state survives a failure: a module rejected at any stage is
// closed immediately and never appears in the registry.
func (r *Registry) LoadPlugin(path string) (bool, error) {
	lib, err := r.opener.Open(path)
	if err != nil {
		r.logger.Error("cannot open module", zap.String("path", path), zap.Error(err))
		return false, err
	}

	m := &Module{ID: uuid.New(), Path: path, lib: lib}

	record, err := r.handshake(m)
	if err != nil {
		// Policy: a module that handshakes but resolves no kind is
		// unloaded rather than kept resident. It would occupy
		// resources for no benefit.
		_ = lib.Close()
		r.logRejection(path, err)
		return false, err
	}
	m.records = append(m.records, record)

	r.mu.Lock()
	r.modules = append(r.modules, m)
	r.mu.Unlock()

	r.logger.Info("plugin loaded",
		zap.String("path", path),
		zap.String("module", m.ID.String()),
		zap.Stringer("kind", record.Kind))
	return true, nil
}

// logRejection emits the one log line the scan produces per rejected
// module: info for files that simply aren't plugins, warning for
// modules matching no kind, error for everything else.
func (r *Registry) logRejection(path string, err error) {
	switch {
	case errors.Is(err, ErrNotAModule):
		r.logger.Info("skipping entry, not a plugin module", zap.String("path", path))
	case errors.Is(err, ErrAllKindsExhausted):
		r.logger.Warn("module matches no plugin kind", zap.String("path", path), zap.Error(err))
	default:
		r.logger.Error("module rejected", zap.String("path", path), zap.Error(err))
	}
}

// Unload removes a module from the registry, drains its in-flight
// calls, runs each record's destructor exactly once in reverse
// registration order, and releases the native handle.
func (r *Registry) Unload(m *Module) error {
	r.mu.Lock()
	idx := -1
	for i, owned := range r.modules {
		if owned == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return ErrUnknownModule
	}
	// Removed under the lock first: the records become unreachable
	// from the registry before any destructor runs.
	r.modules = append(r.modules[:idx], r.modules[idx+1:]...)
	r.mu.Unlock()

	m.quiesce()

	for i := len(m.records) - 1; i >= 0; i-- {
		rec := m.records[i]
		rec.destroy(rec.instance)
	}
	m.records = nil

	r.logger.Info("module unloaded", zap.String("path", m.Path), zap.String("module", m.ID.String()))
	return m.lib.Close()
}

// Shutdown unloads every remaining module, last loaded first, so
// destructors run before process teardown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	mods := append([]*Module{}, r.modules...)
	r.mu.Unlock()

	for i := len(mods) - 1; i >= 0; i-- {
		if err := r.Unload(mods[i]); err != nil && !errors.Is(err, ErrUnknownModule) {
			r.logger.Error("unload during shutdown failed",
				zap.String("path", mods[i].Path), zap.Error(err))
		}
	}
}

// Modules returns a snapshot of the loaded modules in load order.
func (r *Registry) Modules() []*Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Module{}, r.modules...)
}

// Records returns every registered plugin record across all modules,
// in load order.
func (r *Registry) Records() []*PluginRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*PluginRecord
	for _, m := range r.modules {
		records = append(records, m.records...)
	}
	return records
}

// zapSink routes messages plugins write through the host API into the
// host's structured logger.
type zapSink struct {
	logger *zap.Logger
}

func (s *zapSink) Write(level hostapi.Level, text string) {
	switch level {
	case hostapi.LevelWarning:
		s.logger.Warn(text)
	case hostapi.LevelError:
		s.logger.Error(text)
	default:
		s.logger.Info(text)
	}
}
