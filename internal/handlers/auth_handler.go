package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/config"
)

// AuthHandler logs in the clinic's single staff account configured by
// STAFF_EMAIL and STAFF_PASSWORD_HASH.
type AuthHandler struct {
	config *config.Config
	log    *logrus.Logger
}

func NewAuthHandler(cfg *config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{config: cfg, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if h.config.StaffPasswordHash == "" || email != strings.ToLower(h.config.StaffEmail) {
		abortWith(c, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.StaffPasswordHash), []byte(req.Password)); err != nil {
		h.log.WithField("email", email).Warn("staff login failed")
		abortWith(c, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		h.log.Errorf("sign token: %v", err)
		abortWith(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": gin.H{
			"email": email,
			"role":  "staff",
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "staff",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
