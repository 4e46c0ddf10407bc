package intl

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Option mutates a Runtime during construction or Init.
type Option func(*Runtime) error

// New builds an isolated Runtime via supplied options. The locale is not
// set until Init or SetLocale is called.
func New(opts ...Option) (*Runtime, error) {
	r := newRuntime()
	if err := r.apply(opts); err != nil {
		return nil, err
	}
	return r, nil
}

// Init applies opts and switches to the initial locale, falling back to the
// fallback locale when no initial locale was configured.
func (r *Runtime) Init(ctx context.Context, opts ...Option) error {
	if err := r.apply(opts); err != nil {
		return err
	}

	r.mu.RLock()
	initial := r.initialLocale
	if initial == "" {
		initial = r.fallbackLocale
	}
	r.mu.RUnlock()

	if initial == "" {
		return nil
	}
	return r.SetLocale(ctx, initial)
}

func (r *Runtime) apply(opts []Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return err
		}
	}
	return nil
}

// WithFallbackLocale sets the locale appended to every lookup chain.
func WithFallbackLocale(locale string) Option {
	return func(r *Runtime) error {
		r.mu.Lock()
		r.fallbackLocale = normalizeLocale(locale)
		r.mu.Unlock()
		return nil
	}
}

// WithInitialLocale sets the locale Init switches to.
func WithInitialLocale(locale string) Option {
	return func(r *Runtime) error {
		r.mu.Lock()
		r.initialLocale = normalizeLocale(locale)
		r.mu.Unlock()
		return nil
	}
}

func WithLoadingDelay(d time.Duration) Option {
	return func(r *Runtime) error {
		if d < 0 {
			return errors.New("intl: loading delay must not be negative")
		}
		r.mu.Lock()
		r.loadingDelay = d
		r.mu.Unlock()
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) error {
		if logger == nil {
			return nil
		}
		r.mu.Lock()
		r.logger = logger
		r.mu.Unlock()
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(r *Runtime) error {
		r.mu.Lock()
		r.resolver = resolver
		r.mu.Unlock()
		return nil
	}
}

// WithFallback adds static fallbacks for locale. It is ignored when a
// non static resolver was configured before.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(r *Runtime) error {
		if locale == "" {
			return nil
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		resolver, ok := r.resolver.(*StaticFallbackResolver)
		if !ok {
			if r.resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			r.resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLoader registers loaders for locale.
func WithLoader(locale string, loaders ...Loader) Option {
	return func(r *Runtime) error {
		r.Register(locale, loaders...)
		return nil
	}
}

// WithMessages adds already loaded messages for locale.
func WithMessages(locale string, partials ...Tree) Option {
	return func(r *Runtime) error {
		r.AddMessages(locale, partials...)
		return nil
	}
}

// WithNumberFormats merges custom number formats over the defaults.
func WithNumberFormats(formats map[string]FormatOptions) Option {
	return func(r *Runtime) error {
		r.SetCustomNumberFormats(formats)
		return nil
	}
}

func WithDateFormats(formats map[string]FormatOptions) Option {
	return func(r *Runtime) error {
		r.SetCustomDateFormats(formats)
		return nil
	}
}

func WithTimeFormats(formats map[string]FormatOptions) Option {
	return func(r *Runtime) error {
		r.SetCustomTimeFormats(formats)
		return nil
	}
}
