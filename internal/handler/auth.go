package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"
	"github.com/KunalGarg-PEC/BlogsApi/internal/middleware"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler checks the single admin credential pair and issues the
// session cookie. There is exactly one role and no account store.
type AuthHandler struct {
	Admin     config.AdminConfig
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
	Secure    bool
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	ttlHours := cfg.JWT.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 1
	}
	return &AuthHandler{
		Admin:     cfg.Admin,
		JWTSecret: cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
		Secure:    cfg.Server.Mode == "release",
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.Admin.Username)) == 1

	var passOK bool
	if h.Admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(h.Admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.Admin.Password)) == 1
	}
	return userOK && passOK
}

// Login issues the HTTP-only session cookie on a correct credential pair.
// No lockout or rate limiting is applied.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username and password are required")
		return
	}

	if !h.checkCredentials(req.Username, req.Password) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, req.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		return
	}

	h.setSessionCookie(c, token, int(h.TokenTTL.Seconds()))
	util.Success(c, util.Response{
		"message": "login successful",
	})
}

// Logout clears the session cookie. The token itself simply expires; there
// is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	util.Success(c, util.Response{
		"message": "logged out",
	})
}

// GetMe returns the authenticated subject.
func (h *AuthHandler) GetMe(c *gin.Context) {
	util.Success(c, util.Response{
		"username": middleware.Subject(c),
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", h.Secure, true)
}
