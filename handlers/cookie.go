package handlers

import (
	"net/http"
	"time"

	"blogify/middleware"

	"github.com/gin-gonic/gin"
)

// SessionCookies writes and clears the session cookie. Production cookies
// are cross-site (Secure, SameSite=None) because the client is served from
// another origin.
type SessionCookies struct {
	TTL        time.Duration
	Production bool
}

func (s SessionCookies) Set(c *gin.Context, token string) {
	http.SetCookie(c.Writer, s.cookie(token, int(s.TTL.Seconds())))
}

func (s SessionCookies) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, s.cookie("", -1))
}

func (s SessionCookies) cookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteStrictMode,
	}
	if s.Production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
