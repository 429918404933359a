package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/config"
	"github.com/contenthub/contenthub-server/internal/tokens"
	"github.com/contenthub/contenthub-server/pkg/logger"
)

// TokenRequest is the body of POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

// AuthHandler issues and clears the session cookie. Tokens are stateless:
// logout removes the cookie but an already copied token stays valid until it expires.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) Register(r gin.IRouter) {
	r.POST("/jwt", h.Issue)
	r.GET("/logout", h.Logout)
}

// Issue signs a token for the posted email and sets it as an http-only cookie.
// The email is not checked against anything.
func (h *AuthHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	tok, err := tokens.GenerateAccessToken(h.cfg, req.Email, h.cfg.JWT.TokenTTL)
	if err != nil {
		logger.Errorf("issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}
	ttl := h.cfg.JWT.TokenTTL
	if ttl <= 0 {
		ttl = tokens.DefaultTTL
	}
	h.setCookie(c, tok, int(ttl.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout expires the cookie with the same flags it was issued with.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cfg.Cookie.SameSite)
	c.SetCookie(h.cfg.Cookie.Name, value, maxAge, "/", "", h.cfg.Cookie.Secure, true)
}
