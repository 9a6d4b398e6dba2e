package httpx

import (
	"net/http"
	"time"

	"bookcatalog/internal/book"
)

// ThemeCookie holds the visitor's color scheme.
const ThemeCookie = "theme"

// ThemeMiddleware reads the theme cookie into the request context.
func ThemeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := book.ThemeLight
		if c, err := r.Cookie(ThemeCookie); err == nil {
			theme = book.ParseTheme(c.Value)
		}
		next.ServeHTTP(w, r.WithContext(ContextWithTheme(r.Context(), theme)))
	})
}

// SetThemeCookie stores theme for a year.
func SetThemeCookie(w http.ResponseWriter, theme book.Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(theme),
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LocaleMiddleware resolves the Accept-Language header into a supported
// locale and stores it in the request context.
func LocaleMiddleware(resolve func(acceptLanguage string) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Language")
			locale := resolve(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(ContextWithLocale(r.Context(), locale)))
		})
	}
}
