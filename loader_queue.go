package intl

import (
	"context"
	"reflect"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// Register queues loaders for locale. Loaders already queued for the locale
// are skipped: comparable loaders by value, LoaderFunc values by identity.
// An empty dictionary entry is created for unknown locales so they count as
// available.
func (r *Runtime) Register(locale string, loaders ...Loader) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	r.mu.Lock()
	created := false
	if _, ok := r.dictionary[locale]; !ok {
		r.dictionary[locale] = make(Tree)
		created = true
	}
	pending := r.queue[locale]
	for _, loader := range loaders {
		if loader == nil || containsLoader(pending, loader) {
			continue
		}
		r.nextLoader++
		pending = append(pending, queuedLoader{id: r.nextLoader, loader: loader})
	}
	r.queue[locale] = pending
	logger := r.logger
	r.mu.Unlock()

	logger.Debug("loaders registered", "locale", locale, "pending", len(pending))
	if created {
		r.notify()
	}
}

type queuedLoader struct {
	id     uint64
	loader Loader
}

func containsLoader(pending []queuedLoader, loader Loader) bool {
	id, ok := loaderIdentity(loader)
	if !ok {
		return false
	}
	for _, existing := range pending {
		if other, ok := loaderIdentity(existing.loader); ok && other == id {
			return true
		}
	}
	return false
}

// loaderIdentity returns a comparable identity for loader. A LoaderFunc is
// identified by its closure pointer, so the same function value is
// recognised while two closures of one literal stay distinct.
func loaderIdentity(loader Loader) (any, bool) {
	if fn, ok := loader.(LoaderFunc); ok {
		if fn == nil {
			return nil, false
		}
		return *(*unsafe.Pointer)(unsafe.Pointer(&fn)), true
	}
	if !reflect.TypeOf(loader).Comparable() {
		return nil, false
	}
	return loader, true
}

// HasPending reports whether any locale in the chain of locale has queued loaders.
func (r *Runtime) HasPending(locale string) bool {
	chain := r.chain(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range chain {
		if len(r.queue[candidate]) > 0 {
			return true
		}
	}
	return false
}

type pendingGroup struct {
	locale  string
	loaders []queuedLoader
}

// pendingGroups snapshots queued loaders along the chain, most general
// locale first.
func (r *Runtime) pendingGroups(locale string) []pendingGroup {
	chain := r.chain(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var groups []pendingGroup
	for i := len(chain) - 1; i >= 0; i-- {
		candidate := chain[i]
		if pending := r.queue[candidate]; len(pending) > 0 {
			groups = append(groups, pendingGroup{
				locale:  candidate,
				loaders: append([]queuedLoader(nil), pending...),
			})
		}
	}
	return groups
}

// Flush runs every queued loader along the chain of locale and merges the
// results into the dictionary, most general locale first. Concurrent
// flushes of the same locale share one run. Once started a run completes
// even when ctx is cancelled; ctx only bounds how long the caller waits.
// When any loader fails nothing is committed and the queue is kept so a
// later flush retries.
func (r *Runtime) Flush(ctx context.Context, locale string) error {
	locale = normalizeLocale(locale)
	if !r.HasPending(locale) {
		return nil
	}

	runCtx := context.WithoutCancel(ctx)
	ch := r.flights.DoChan(locale, func() (any, error) {
		return nil, r.flush(runCtx, locale)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runtime) flush(ctx context.Context, locale string) error {
	groups := r.pendingGroups(locale)
	if len(groups) == 0 {
		return nil
	}

	r.mu.RLock()
	delay := r.loadingDelay
	logger := r.logger
	r.mu.RUnlock()

	timer := time.AfterFunc(delay, func() { r.setLoading(true) })
	defer func() {
		timer.Stop()
		r.setLoading(false)
	}()

	logger.Debug("flush started", "locale", locale, "groups", len(groups))

	results := make([][]Tree, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	for i, group := range groups {
		results[i] = make([]Tree, len(group.loaders))
		for j, queued := range group.loaders {
			g.Go(func() error {
				tree, err := queued.loader.Load(gctx, group.locale)
				if err != nil {
					return &LoadError{Locale: group.locale, Err: err}
				}
				results[i][j] = tree
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		logger.Warn("flush failed", "locale", locale, "error", err)
		return err
	}

	r.mu.Lock()
	for i, group := range groups {
		r.mergeLocked(group.locale, results[i]...)
		r.queue[group.locale] = removeLoaders(r.queue[group.locale], group.loaders)
		if len(r.queue[group.locale]) == 0 {
			delete(r.queue, group.locale)
		}
	}
	r.mu.Unlock()

	logger.Debug("flush finished", "locale", locale)
	r.notify()
	return nil
}

// removeLoaders drops the loaders that ran. Loaders registered while the
// flush was running stay queued.
func removeLoaders(pending, done []queuedLoader) []queuedLoader {
	ran := make(map[uint64]struct{}, len(done))
	for _, queued := range done {
		ran[queued.id] = struct{}{}
	}
	var rest []queuedLoader
	for _, queued := range pending {
		if _, ok := ran[queued.id]; !ok {
			rest = append(rest, queued)
		}
	}
	return rest
}
