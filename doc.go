// Package intl is the runtime for precompiled ICU messages.
//
// Messages are compiled ahead of time (see the compiler package and the
// intl-precompile command) into plain strings and MessageFunc values. The
// runtime keeps the current locale and a per locale dictionary, loads
// dictionaries lazily through registered loaders, and provides the helpers
// compiled messages call for interpolation, plural and select dispatch and
// locale aware number, date and time formatting.
//
//	intl.Register("en", intl.NewFileLoader("locales/en.json"))
//	if err := intl.Init(ctx, intl.WithFallbackLocale("en")); err != nil {
//		return err
//	}
//	out, err := intl.FormatMessage("", "cart.items", intl.MessageOptions{
//		Values: intl.Values{"count": 3},
//	})
package intl
