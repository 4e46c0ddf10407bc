package intl

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTreeFormats(t *testing.T) {
	data, err := os.ReadFile("testdata/en.json")
	require.NoError(t, err)
	tree, err := DecodeTree("testdata/en.json", data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", tree["title"])
	assert.Equal(t, json.Number("3"), tree["count"])
	assert.Equal(t, Tree{"home": "Home"}, tree["nav"])

	data, err = os.ReadFile("testdata/en.yaml")
	require.NoError(t, err)
	tree, err = DecodeTree("testdata/en.yaml", data)
	require.NoError(t, err)
	assert.Equal(t, Tree{"about": "About"}, tree["nav"])

	data, err = os.ReadFile("testdata/en.toml")
	require.NoError(t, err)
	tree, err = DecodeTree("testdata/en.toml", data)
	require.NoError(t, err)
	assert.Equal(t, Tree{"contact": "Contact"}, tree["nav"])

	_, err = DecodeTree("messages.ini", []byte("a=b"))
	require.Error(t, err)
}

func TestFileLoaderMergesInOrder(t *testing.T) {
	loader := NewFileLoader("testdata/en.json", "testdata/en.yaml")
	tree, err := loader.Load(t.Context(), "en")
	require.NoError(t, err)

	assert.Equal(t, "Welcome", tree["title"])
	assert.Equal(t, "Footer", tree["footer"])
	assert.Equal(t, Tree{"about": "About"}, tree["nav"], "merge is shallow")

	_, err = NewFileLoader().Load(t.Context(), "en")
	require.Error(t, err)
	_, err = NewFileLoader("testdata/missing.json").Load(t.Context(), "en")
	require.Error(t, err)
}

func TestFSLoaderLocalePlaceholder(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/es/app.json": {Data: []byte(`{"title": "Hola"}`)},
		"locales/es/nav.yaml": {Data: []byte("home: Inicio\n")},
	}
	loader := NewFSLoader(fsys, "locales/{locale}/*.json", "locales/{locale}/*.yaml")

	tree, err := loader.Load(t.Context(), "es")
	require.NoError(t, err)
	assert.Equal(t, Tree{"title": "Hola", "home": "Inicio"}, tree)

	_, err = loader.Load(t.Context(), "fr")
	require.Error(t, err)
}

func TestRegisterCreatesPlaceholderAndDedupes(t *testing.T) {
	rt := newTestRuntime(t)
	static := StaticLoader(Tree{"a": "b"})

	rt.Register("en", static, static)
	rt.Register("en", static, nil)

	assert.True(t, rt.HasLocale("en"))
	assert.True(t, rt.HasPending("en-US"))
	require.Len(t, rt.queue["en"], 1)

	fn := LoaderFunc(func(context.Context, string) (Tree, error) { return nil, nil })
	rt.Register("en", fn, fn)
	rt.Register("en", fn)
	assert.Len(t, rt.queue["en"], 2)

	rt.Register("en", LoaderFunc(loadNothing), LoaderFunc(loadNothing))
	assert.Len(t, rt.queue["en"], 3)
}

func loadNothing(context.Context, string) (Tree, error) { return nil, nil }

func TestRegisterKeepsDistinctClosures(t *testing.T) {
	rt := newTestRuntime(t)
	fileLoader := func(name string) LoaderFunc {
		return func(context.Context, string) (Tree, error) { return Tree{name: name}, nil }
	}

	rt.Register("en", fileLoader("a"), fileLoader("b"))
	require.Len(t, rt.queue["en"], 2)

	require.NoError(t, rt.Flush(t.Context(), "en"))
	got, ok := rt.Lookup("b", "en")
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestFlushMergesMostGeneralFirst(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Register("en", StaticLoader(Tree{"title": "Hello", "color": "color"}))
	rt.Register("en-GB", StaticLoader(Tree{"color": "colour"}))

	require.NoError(t, rt.Flush(t.Context(), "en-GB"))
	assert.False(t, rt.HasPending("en-GB"))

	got, _ := rt.Lookup("color", "en-GB")
	assert.Equal(t, "colour", got)
	got, _ = rt.Lookup("color", "en")
	assert.Equal(t, "color", got)
	got, _ = rt.Lookup("title", "en-GB")
	assert.Equal(t, "Hello", got)
}

func TestFlushKeepsRegistrationOrderWithinLocale(t *testing.T) {
	rt := newTestRuntime(t)
	slow := LoaderFunc(func(context.Context, string) (Tree, error) {
		time.Sleep(20 * time.Millisecond)
		return Tree{"k": "first"}, nil
	})
	rt.Register("en", slow, StaticLoader(Tree{"k": "second"}))

	require.NoError(t, rt.Flush(t.Context(), "en"))
	got, _ := rt.Lookup("k", "en")
	assert.Equal(t, "second", got)
}

func TestFlushFailureCommitsNothing(t *testing.T) {
	rt := newTestRuntime(t)
	boom := errors.New("boom")
	var calls atomic.Int32
	failing := LoaderFunc(func(context.Context, string) (Tree, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return Tree{"b": "2"}, nil
	})
	rt.Register("en", StaticLoader(Tree{"a": "1"}), failing)

	err := rt.Flush(t.Context(), "en")
	require.ErrorIs(t, err, boom)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "en", loadErr.Locale)

	_, ok := rt.Lookup("a", "en")
	assert.False(t, ok)
	assert.True(t, rt.HasPending("en"))
	assert.False(t, rt.Loading())

	require.NoError(t, rt.Flush(t.Context(), "en"))
	got, _ := rt.Lookup("a", "en")
	assert.Equal(t, "1", got)
	got, _ = rt.Lookup("b", "en")
	assert.Equal(t, "2", got)
}

func TestFlushConcurrentCallsShareOneRun(t *testing.T) {
	rt := newTestRuntime(t)
	release := make(chan struct{})
	var calls atomic.Int32
	rt.Register("en", LoaderFunc(func(context.Context, string) (Tree, error) {
		calls.Add(1)
		<-release
		return Tree{"a": "1"}, nil
	}))

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = rt.Flush(context.Background(), "en")
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestFlushCancelledCallerStillCommits(t *testing.T) {
	rt := newTestRuntime(t)
	release := make(chan struct{})
	done := make(chan struct{})
	rt.Register("en", LoaderFunc(func(context.Context, string) (Tree, error) {
		defer close(done)
		<-release
		return Tree{"a": "1"}, nil
	}))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := rt.Flush(ctx, "en")
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	<-done
	assert.Eventually(t, func() bool {
		_, ok := rt.Lookup("a", "en")
		return ok
	}, time.Second, 5*time.Millisecond)
}

func TestFlushLoadingFlag(t *testing.T) {
	rt := newTestRuntime(t, WithLoadingDelay(5*time.Millisecond))
	release := make(chan struct{})
	rt.Register("en", LoaderFunc(func(context.Context, string) (Tree, error) {
		<-release
		return Tree{}, nil
	}))

	errCh := make(chan error, 1)
	go func() { errCh <- rt.Flush(context.Background(), "en") }()

	assert.Eventually(t, rt.Loading, time.Second, time.Millisecond)
	close(release)
	require.NoError(t, <-errCh)
	assert.False(t, rt.Loading())
}

func TestFlushWithoutPendingIsNoop(t *testing.T) {
	rt := newTestRuntime(t)
	require.NoError(t, rt.Flush(t.Context(), "en"))
}

func TestLoaderRegisteredDuringFlushStaysQueued(t *testing.T) {
	rt := newTestRuntime(t)
	release := make(chan struct{})
	started := make(chan struct{})
	rt.Register("en", LoaderFunc(func(context.Context, string) (Tree, error) {
		close(started)
		<-release
		return Tree{"a": "1"}, nil
	}))

	errCh := make(chan error, 1)
	go func() { errCh <- rt.Flush(context.Background(), "en") }()
	<-started
	rt.Register("en", StaticLoader(Tree{"b": "2"}))
	close(release)
	require.NoError(t, <-errCh)

	assert.True(t, rt.HasPending("en"))
	require.NoError(t, rt.Flush(t.Context(), "en"))
	got, _ := rt.Lookup("b", "en")
	assert.Equal(t, "2", got)
}

func TestSetLocaleFlushesPendingLoaders(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Register("es", StaticLoader(Tree{"hola": "Hola"}))

	var seen []string
	rt.Subscribe(func(s State) {
		if s.Locale == "es-MX" {
			_, ok := rt.Lookup("hola", "es-MX")
			seen = append(seen, map[bool]string{true: "loaded", false: "missing"}[ok])
		}
	})

	require.NoError(t, rt.SetLocale(t.Context(), "es-MX"))
	assert.Equal(t, []string{"loaded"}, seen)
	assert.False(t, rt.HasPending("es"))
}

func TestSetLocaleReturnsLoadError(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Register("fr", LoaderFunc(func(context.Context, string) (Tree, error) {
		return nil, errors.New("unavailable")
	}))

	err := rt.SetLocale(t.Context(), "fr")
	require.Error(t, err)
	assert.Equal(t, "", rt.Locale())
}
