// Package session manages the single login cookie. There is no server-side
// store: a non-empty cookie is all a request needs to count as logged in.
package session

import (
	"net/http"
	"time"
)

const (
	CookieName = "session"
	MaxAge     = 24 * time.Hour
)

// Login sets the session cookie to token.
func Login(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Logout clears the cookie.
func Logout(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Present reports whether the request carries a non-empty session cookie.
func Present(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value != ""
}
