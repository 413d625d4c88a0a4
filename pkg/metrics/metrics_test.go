package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sternrassler/phrase-client/pkg/cache"
	"github.com/prometheus/client_golang/prometheus"
)

func TestRegistry(t *testing.T) {
	if Registry == nil {
		t.Error("Registry should not be nil")
	}

	if Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should be the default Prometheus registerer")
	}
}

func TestHandler_ServesCacheMetrics(t *testing.T) {
	cache.NotModifiedResponses.Inc()
	cache.CacheHits.WithLabelValues(cache.StoreResponses).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"phrase_304_responses_total",
		`phrase_cache_hits_total{store="responses"}`,
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
