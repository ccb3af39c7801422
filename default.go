package bedrockauth

import (
	"sync"
	"sync/atomic"
)

// defaultConfig holds the process-wide resolved configuration. Publication
// is atomic: readers always see either nil or a fully-resolved Config,
// never a partially-assembled one.
var (
	defaultMu     sync.Mutex
	defaultConfig atomic.Pointer[Config]
)

// Default returns the process-wide Config, lazily resolving it from the
// process environment on first access. The first successful resolution
// wins; later callers receive the same value. Use Refresh to replace it.
func Default(opts ...Option) (*Config, error) {
	if cfg := defaultConfig.Load(); cfg != nil {
		return cfg, nil
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	// Another caller may have resolved while we waited for the lock.
	if cfg := defaultConfig.Load(); cfg != nil {
		return cfg, nil
	}

	cfg, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defaultConfig.Store(cfg)
	return cfg, nil
}

// Refresh re-resolves the process-wide Config and replaces the cached value
// (last write wins). The previous value, if any, is kept on failure.
func Refresh(opts ...Option) (*Config, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	cfg, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defaultConfig.Store(cfg)
	return cfg, nil
}

// Ensure returns the process-wide Config, resolving it if needed, and fails
// fast when no valid configuration can be produced. Intended for process
// startup: callers should treat an error as fatal rather than proceed with
// partial configuration.
func Ensure(opts ...Option) (*Config, error) {
	return Default(opts...)
}

// ResetDefault discards the cached process-wide Config so the next Default
// call re-resolves. Primarily for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig.Store(nil)
}
