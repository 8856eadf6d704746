// Package i18n resolves message keys to localized text.
package i18n

import "context"

// Key identifies a translatable message.
type Key string

// TranslateFunc maps a key to its text in one language.
type TranslateFunc func(Key) string

type translatorKey struct{}

// Identity returns the key itself. It is what UseI18n hands out when no
// translator was installed.
func Identity(k Key) string {
	return string(k)
}

// WithTranslator returns a copy of ctx carrying fn.
func WithTranslator(ctx context.Context, fn TranslateFunc) context.Context {
	return context.WithValue(ctx, translatorKey{}, fn)
}

// UseI18n returns the translator installed in ctx, unchanged.
func UseI18n(ctx context.Context) TranslateFunc {
	if fn, ok := ctx.Value(translatorKey{}).(TranslateFunc); ok && fn != nil {
		return fn
	}
	return Identity
}
