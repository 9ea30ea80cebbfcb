package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRateRouter(enabled bool, perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(enabled, perMinute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func ping(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w.Code
}

// TestRateLimitRejects: после исчерпания бакета запросы получают 429.
func TestRateLimitRejects(t *testing.T) {
	r := newRateRouter(true, 2)

	if code := ping(r); code != http.StatusOK {
		t.Fatalf("первый запрос должен пройти, получен %d", code)
	}
	if code := ping(r); code != http.StatusOK {
		t.Fatalf("второй запрос должен пройти, получен %d", code)
	}
	if code := ping(r); code != http.StatusTooManyRequests {
		t.Errorf("третий запрос должен упереться в лимит, получен %d", code)
	}
}

// TestRateLimitDisabled: выключенный лимит пропускает всё.
func TestRateLimitDisabled(t *testing.T) {
	r := newRateRouter(false, 1)

	for i := 0; i < 5; i++ {
		if code := ping(r); code != http.StatusOK {
			t.Fatalf("запрос %d должен пройти, получен %d", i, code)
		}
	}
}
