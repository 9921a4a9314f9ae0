package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/Murugavl/RO-Catalog/internal/config"
)

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/admin/login
Checks the configured admin credential and issues the bearer token the
console attaches to every subsequent call. Attempts are rate limited.
*/
func AdminLogin(cfg config.Config) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Second), 5)

	return func(c *gin.Context) {
		const route = "POST /api/admin/login"

		if !limiter.Allow() {
			respondWithError(c, http.StatusTooManyRequests, route, "too many login attempts")
			return
		}

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			respondWithError(c, http.StatusBadRequest, route, "email and password are required")
			return
		}

		if email != strings.ToLower(cfg.AdminEmail) {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword(
			[]byte(cfg.AdminPasswordHash),
			[]byte(req.Password),
		); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		claims := jwt.MapClaims{
			"sub":  email,
			"role": "admin",
			"exp":  time.Now().Add(cfg.AccessTokenTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": signed})
	}
}
