package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthMiddleware("secret"), func(c *gin.Context) {
		c.String(http.StatusOK, StaffEmail(c))
	})

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "bad scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signed(t, "other", jwt.MapClaims{"sub": "a@b.c"}), status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "a@b.c", "exp": time.Now().Add(-time.Hour).Unix()}), status: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"role": "staff"}), status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "a@b.c", "role": "staff"}), status: http.StatusOK, body: "a@b.c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	tr, err := i18n.New("pt-BR")
	require.NoError(t, err)

	r := gin.New()
	r.Use(LocaleMiddleware(tr))
	r.POST("/submit", NewRateLimiter(2, quiet()).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Contains(t, w.Body.String(), "rate_limited")
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLocaleMiddleware(t *testing.T) {
	tr, err := i18n.New("pt-BR")
	require.NoError(t, err)

	r := gin.New()
	r.Use(LocaleMiddleware(tr))
	r.GET("/", func(c *gin.Context) {
		fromGin := Localizer(c).T(i18n.KeyBookingSuccess)
		fromCtx := i18n.FromContext(c.Request.Context()).T(i18n.KeyBookingSuccess)
		assert.Equal(t, fromGin, fromCtx)
		c.String(http.StatusOK, fromGin)
	})

	get := func(target, acceptLanguage string) string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Body.String()
	}

	assert.Equal(t, "Consulta agendada com sucesso!", get("/", ""))
	assert.Equal(t, "Appointment scheduled successfully!", get("/", "en-US,en;q=0.9"))
	assert.Equal(t, "Consulta agendada com sucesso!", get("/?lang=pt-BR", "en-US"))
	assert.Equal(t, "Appointment scheduled successfully!", get("/?lang=en", ""))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/api/sessions", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, quiet())
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	first := rl.getLimiter("10.0.0.1")
	assert.Same(t, first, rl.getLimiter("10.0.0.1"))

	now = now.Add(5 * time.Minute)
	second := rl.getLimiter("10.0.0.2")

	now = now.Add(6 * time.Minute)
	rl.getLimiter("10.0.0.3")

	rl.mu.Lock()
	_, firstKept := rl.visitors["10.0.0.1"]
	size := len(rl.visitors)
	rl.mu.Unlock()

	assert.False(t, firstKept)
	assert.Equal(t, 2, size)
	assert.Same(t, second, rl.getLimiter("10.0.0.2"))
	assert.NotSame(t, first, rl.getLimiter("10.0.0.1"))
}
