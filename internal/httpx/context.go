package httpx

import (
	"context"
	"net/http"

	"bookcatalog/internal/book"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	themeKey     contextKey = "theme"
	localeKey    contextKey = "locale"
)

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ThemeFrom retrieves the visitor's theme, light when unset.
func ThemeFrom(r *http.Request) book.Theme {
	if v, ok := r.Context().Value(themeKey).(book.Theme); ok {
		return v
	}
	return book.ThemeLight
}

// ContextWithTheme returns a new context carrying the theme.
func ContextWithTheme(ctx context.Context, theme book.Theme) context.Context {
	return context.WithValue(ctx, themeKey, theme)
}

// LocaleFrom retrieves the resolved locale, empty when unset.
func LocaleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(localeKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithLocale returns a new context carrying the locale.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}
