package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/homelife/backoffice/internal/config"
)

func TestGinMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTPMetrics(config.Config{Environment: "test"})

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	if !strings.Contains(body, "http_server_requests_total") {
		t.Fatalf("expected requests counter in scrape output")
	}
	if !strings.Contains(body, `endpoint="/ping"`) {
		t.Fatalf("expected /ping endpoint label in scrape output:\n%s", body)
	}
}
