package intl

import (
	"errors"
	"log/slog"
)

// TranslationHook observes translations made through a HookedTranslator.
type TranslationHook interface {
	BeforeTranslate(ctx *HookContext)
	AfterTranslate(ctx *HookContext)
}

// HookContext carries one translation through its hooks. Before hooks may
// rewrite Locale, Key and Args; after hooks may rewrite Result and Error.
type HookContext struct {
	Locale   string
	Key      string
	Args     []any
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// TranslationHookFuncs adapts plain functions to TranslationHook.
type TranslationHookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h TranslationHookFuncs) BeforeTranslate(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Translator = &HookedTranslator{}

// HookedTranslator runs hooks around another Translator.
type HookedTranslator struct {
	next  Translator
	hooks []TranslationHook
}

// WrapTranslator decorates next with hooks. next is returned unchanged when
// there are no non nil hooks.
func WrapTranslator(next Translator, hooks ...TranslationHook) Translator {
	if next == nil {
		return nil
	}

	filtered := make([]TranslationHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook != nil {
			filtered = append(filtered, hook)
		}
	}
	if len(filtered) == 0 {
		return next
	}
	return &HookedTranslator{next: next, hooks: filtered}
}

func (t *HookedTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil || t.next == nil {
		return "", ErrMissingTranslation
	}

	ctx := &HookContext{Locale: locale, Key: key, Args: args}
	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	ctx.Result, ctx.Error = t.next.Translate(ctx.Locale, ctx.Key, ctx.Args...)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}
	return ctx.Result, ctx.Error
}

// LogMissing returns a hook logging missing translations at warn level and
// other failures at error level.
func LogMissing(logger *slog.Logger) TranslationHook {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return TranslationHookFuncs{
		After: func(ctx *HookContext) {
			switch {
			case ctx.Error == nil:
			case errors.Is(ctx.Error, ErrMissingTranslation):
				logger.Warn("missing translation", "locale", ctx.Locale, "key", ctx.Key)
			default:
				logger.Error("translation failed", "locale", ctx.Locale, "key", ctx.Key, "error", ctx.Error)
			}
		},
	}
}
