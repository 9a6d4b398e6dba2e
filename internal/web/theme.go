package web

import (
	"net/http"
	"net/url"
	"strings"

	"bookcatalog/internal/httpx"
)

// ToggleTheme flips the theme cookie and sends the visitor back to the page
// they came from.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	httpx.SetThemeCookie(w, httpx.ThemeFrom(r).Toggle())
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the local path of the referring page, or "/" when the
// referer is missing or belongs to another host.
func backTo(r *http.Request) string {
	if err := r.ParseForm(); err == nil {
		if next := r.PostForm.Get("next"); isLocalPath(next) {
			return next
		}
	}
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || !isLocalPath(ref.Path) {
		return "/"
	}
	return ref.RequestURI()
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
