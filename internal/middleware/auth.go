package middleware

import (
	"net/http"

	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
)

// CookieName is the single canonical session cookie. Earlier deployments
// disagreed between "admin-token" and "auth-token"; everything now keys on
// this one name and one secret.
const CookieName = "admin_token"

const subjectKey = "adminSubject"

// verify pulls the session cookie and checks signature and expiry. Each
// request is evaluated independently; the token is never extended.
func verify(c *gin.Context, jwtSecret string) bool {
	tokenStr, err := c.Cookie(CookieName)
	if err != nil || tokenStr == "" {
		return false
	}
	claims, err := util.ParseToken(jwtSecret, tokenStr)
	if err != nil {
		return false
	}
	c.Set(subjectKey, claims.Subject)
	return true
}

// RequireAdminAPI guards JSON endpoints: unauthenticated requests get a 401
// envelope.
func RequireAdminAPI(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verify(c, jwtSecret) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminPage guards HTML pages: unauthenticated requests are sent to
// the login page.
func RequireAdminPage(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verify(c, jwtSecret) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Subject returns the authenticated admin username, if any.
func Subject(c *gin.Context) string {
	if v, ok := c.Get(subjectKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
