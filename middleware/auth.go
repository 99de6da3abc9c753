package middleware

import (
	"net/http"

	"blogify/helper"
	"blogify/models"
	"blogify/services"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "access_token"

	ContextEmail = "email"
	ContextUser  = "user"
)

var HTTPHelper = &helper.HTTPHelper{}

// AuthMiddleware admits requests carrying a valid session cookie and stores
// the session email in the context.
func AuthMiddleware(creds services.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, creds); !ok {
			return
		}
		c.Next()
	}
}

// AdminMiddleware authenticates the session and then requires the account
// behind it to hold the admin role.
func AdminMiddleware(creds services.CredentialStore, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := authenticate(c, creds)
		if !ok {
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if HTTPHelper.GetStatusCode(err) == http.StatusNotFound {
				HTTPHelper.SendUnauthorizedError(c, models.MsgAuthFailed)
				return
			}
			HTTPHelper.SendError(c, err)
			return
		}

		if !user.IsAdmin() {
			HTTPHelper.SendErrorMessage(c, http.StatusForbidden, models.MsgForbidden)
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireActive rejects sessions whose account has been deactivated. It must
// run after AuthMiddleware.
func RequireActive(users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByEmail(c.Request.Context(), CurrentEmail(c))
		if err != nil {
			if HTTPHelper.GetStatusCode(err) == http.StatusNotFound {
				HTTPHelper.SendUnauthorizedError(c, models.MsgAuthFailed)
				return
			}
			HTTPHelper.SendError(c, err)
			return
		}

		if user.Status != models.StatusActive {
			HTTPHelper.SendErrorMessage(c, http.StatusForbidden, models.MsgInactiveUser)
			return
		}
		c.Next()
	}
}

// CurrentEmail returns the authenticated email, or "" outside a session.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(ContextEmail)
}

func authenticate(c *gin.Context, creds services.CredentialStore) (string, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		HTTPHelper.SendUnauthorizedError(c, models.MsgAuthFailed)
		return "", false
	}

	claims, err := creds.VerifyToken(token)
	if err != nil {
		HTTPHelper.SendUnauthorizedError(c, models.MsgAuthFailed)
		return "", false
	}

	c.Set(ContextEmail, claims.Email)
	return claims.Email, true
}
