package intl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultLoadingDelay is how long a flush may run before Loading reports true.
const DefaultLoadingDelay = 200 * time.Millisecond

// Runtime holds the live locale, the dictionary, the loader queue and the
// format tables compiled messages are evaluated against. It is safe for
// concurrent use.
type Runtime struct {
	mu             sync.RWMutex
	locale         string
	initialLocale  string
	fallbackLocale string
	dictionary     Dictionary
	queue          map[string][]queuedLoader
	nextLoader     uint64
	resolver       FallbackResolver
	formats        formatTables
	loading        bool
	loadingDelay   time.Duration
	logger         *slog.Logger

	flights singleflight.Group
	plurals pluralCache

	subMu       sync.Mutex
	subscribers map[int]func(State)
	nextSub     int
}

func newRuntime() *Runtime {
	return &Runtime{
		dictionary:   make(Dictionary),
		queue:        make(map[string][]queuedLoader),
		formats:      defaultFormatTables(),
		loadingDelay: DefaultLoadingDelay,
		logger:       slog.New(slog.DiscardHandler),
		subscribers:  make(map[int]func(State)),
	}
}

var std atomic.Pointer[Runtime]

func init() {
	std.Store(newRuntime())
}

// Default returns the process wide runtime used by the package level
// functions and by generated code.
func Default() *Runtime {
	return std.Load()
}

// SetDefault replaces the process wide runtime.
func SetDefault(r *Runtime) {
	if r != nil {
		std.Store(r)
	}
}

// Locale returns the current locale, or "" when none has been set.
func (r *Runtime) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locale
}

// Loading reports whether a flush has been running longer than the loading delay.
func (r *Runtime) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// SetLocale switches the current locale. When the locale resolves to a known
// locale with pending loaders, those are flushed first so the switch only
// becomes observable once its messages are present.
func (r *Runtime) SetLocale(ctx context.Context, locale string) error {
	locale = normalizeLocale(locale)

	if locale != "" && r.ClosestAvailableLocale(locale) != "" && r.HasPending(locale) {
		if err := r.Flush(ctx, locale); err != nil {
			return err
		}
	}

	r.mu.Lock()
	changed := r.locale != locale
	r.locale = locale
	r.mu.Unlock()

	if changed {
		r.log().Debug("locale changed", "locale", locale)
		r.notify()
	}
	return nil
}

// State returns the observable snapshot of the runtime.
func (r *Runtime) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return State{
		Locale:  r.locale,
		Locales: r.localesLocked(),
		Loading: r.loading,
	}
}

func (r *Runtime) setLoading(loading bool) {
	r.mu.Lock()
	changed := r.loading != loading
	r.loading = loading
	r.mu.Unlock()

	if changed {
		r.notify()
	}
}

// Package level functions operating on the default runtime.

func Locale() string { return Default().Locale() }

func SetLocale(ctx context.Context, locale string) error {
	return Default().SetLocale(ctx, locale)
}

func Init(ctx context.Context, opts ...Option) error {
	return Default().Init(ctx, opts...)
}

func Register(locale string, loaders ...Loader) {
	Default().Register(locale, loaders...)
}

func Flush(ctx context.Context, locale string) error {
	return Default().Flush(ctx, locale)
}

func AddMessages(locale string, partials ...Tree) {
	Default().AddMessages(locale, partials...)
}

func (r *Runtime) log() *slog.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}
