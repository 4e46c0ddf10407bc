package intl

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map template data to find the locale. Defaults
	// to "locale".
	LocaleKey string
	// OnMissing renders keys without a translation. The key is rendered
	// when nil.
	OnMissing func(locale, key string, args []any, err error) string
	// Hooks wrap every translate call.
	Hooks []TranslationHook
}

// TemplateHelpers exposes message and formatter helpers for text/template
// and html/template. Every helper takes the locale source first: a locale
// string, map data holding LocaleKey, or nil for the current locale.
func (r *Runtime) TemplateHelpers(cfg HelperConfig) map[string]any {
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}

	translator := WrapTranslator(r, cfg.Hooks...)

	translate := func(ctx any, key string, args ...any) string {
		locale := r.templateLocale(ctx, cfg.LocaleKey)
		out, err := translator.Translate(locale, key, args...)
		if err != nil {
			if cfg.OnMissing != nil {
				return cfg.OnMissing(locale, key, args, err)
			}
			return key
		}
		return out
	}

	return map[string]any{
		"translate": translate,
		"t":         translate,
		"current_locale": func(ctx any) string {
			return r.templateLocale(ctx, cfg.LocaleKey)
		},
		"format_number": func(ctx any, value any, style ...any) (string, error) {
			return r.FormatNumber(r.templateLocale(ctx, cfg.LocaleKey), value, firstStyle(style))
		},
		"format_date": func(ctx any, value any, style ...any) (string, error) {
			return r.FormatDate(r.templateLocale(ctx, cfg.LocaleKey), value, firstStyle(style))
		},
		"format_time": func(ctx any, value any, style ...any) (string, error) {
			return r.FormatTime(r.templateLocale(ctx, cfg.LocaleKey), value, firstStyle(style))
		},
		"json": func(ctx any, key string) any {
			return r.JSON(key, r.templateLocale(ctx, cfg.LocaleKey))
		},
	}
}

func firstStyle(style []any) any {
	if len(style) == 0 {
		return nil
	}
	return style[0]
}

func (r *Runtime) templateLocale(ctx any, key string) string {
	switch v := ctx.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if locale, ok := v[key].(string); ok && locale != "" {
			return locale
		}
	case map[string]string:
		if locale := v[key]; locale != "" {
			return locale
		}
	}
	return r.Locale()
}
