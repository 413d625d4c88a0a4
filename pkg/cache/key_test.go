package cache

import (
	"net/http"
	"net/url"
	"testing"
)

func TestRequestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  RequestKey
		want string
	}{
		{
			name: "simple path no params",
			key:  NewRequestKey("GET", "/api/v2/projects", nil),
			want: "GET /api/v2/projects",
		},
		{
			name: "lower case method is normalized",
			key:  NewRequestKey("get", "/api/v2/projects", nil),
			want: "GET /api/v2/projects",
		},
		{
			name: "query string on path is stripped",
			key:  NewRequestKey("GET", "/api/v2/projects?page=2", nil),
			want: "GET /api/v2/projects",
		},
		{
			name: "query params",
			key: NewRequestKey("GET", "/api/v2/projects/p1/locales", url.Values{
				"branch": []string{"main"},
			}),
			want: "GET /api/v2/projects/p1/locales?branch=main",
		},
		{
			name: "multiple query params (sorted)",
			key: NewRequestKey("GET", "/api/v2/projects/p1/locales/l1/download", url.Values{
				"file_format": []string{"json"},
				"branch":      []string{"main"},
			}),
			want: "GET /api/v2/projects/p1/locales/l1/download?branch=main&file_format=json",
		},
		{
			name: "params without values are dropped",
			key: NewRequestKey("GET", "/api/v2/projects/p1/locales", url.Values{
				"branch": nil,
				"page":   []string{},
			}),
			want: "GET /api/v2/projects/p1/locales",
		},
		{
			name: "multi valued param keeps value order",
			key: NewRequestKey("GET", "/api/v2/projects/p1/keys", url.Values{
				"tags": []string{"b", "a"},
			}),
			want: "GET /api/v2/projects/p1/keys?tags=b&tags=a",
		},
		{
			name: "bracketed param names are escaped",
			key: NewRequestKey("GET", "/download", url.Values{
				"format_options[escape_single_quotes]": []string{"true"},
			}),
			want: "GET /download?format_options%5Bescape_single_quotes%5D=true",
		},
		{
			name: "empty path",
			key:  NewRequestKey("DELETE", "", nil),
			want: "DELETE /",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.key.String()
			if got != tt.want {
				t.Errorf("RequestKey.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRequestKey_OrderIndependence ensures declaration order of query params
// never changes the identity.
func TestRequestKey_OrderIndependence(t *testing.T) {
	a := url.Values{}
	a.Set("file_format", "json")
	a.Set("branch", "main")
	a.Set("include_empty_translations", "true")

	b := url.Values{}
	b.Set("include_empty_translations", "true")
	b.Set("branch", "main")
	b.Set("file_format", "json")

	k1 := NewRequestKey("GET", "/api/v2/projects/p/locales/l/download", a)
	k2 := NewRequestKey("GET", "/api/v2/projects/p/locales/l/download", b)

	if !k1.Equal(k2) {
		t.Errorf("keys differ: %q vs %q", k1, k2)
	}

	// Generate key multiple times
	first := k1.String()
	for i := 0; i < 10; i++ {
		if got := k1.String(); got != first {
			t.Errorf("iteration %d = %v, want %v (not deterministic)", i, got, first)
		}
	}
}

func TestRequestKey_NotEqual(t *testing.T) {
	base := NewRequestKey("GET", "/api/v2/projects/p", nil)

	others := []RequestKey{
		NewRequestKey("DELETE", "/api/v2/projects/p", nil),
		NewRequestKey("GET", "/api/v2/projects/q", nil),
		NewRequestKey("GET", "/api/v2/projects/p", url.Values{"branch": {"x"}}),
	}

	for _, other := range others {
		if base.Equal(other) {
			t.Errorf("%q should not equal %q", base, other)
		}
	}
}

func TestRequestKey_ValueOrderMatters(t *testing.T) {
	k1 := NewRequestKey("GET", "/p", url.Values{"tags": {"a", "b"}})
	k2 := NewRequestKey("GET", "/p", url.Values{"tags": {"b", "a"}})
	if k1.Equal(k2) {
		t.Error("value lists in different order should produce different keys")
	}
}

func TestNewRequestKey_CopiesQuery(t *testing.T) {
	q := url.Values{"branch": {"main"}}
	key := NewRequestKey("GET", "/p", q)

	q["branch"][0] = "mutated"
	q.Set("page", "2")

	if got := key.String(); got != "GET /p?branch=main" {
		t.Errorf("key changed after caller mutated query: %v", got)
	}
}

func TestKeyFromRequest(t *testing.T) {
	req, err := http.NewRequest("GET", "https://api.phraseapp.com/api/v2/projects/p1/locales?branch=main&page=1", nil)
	if err != nil {
		t.Fatal(err)
	}

	got := KeyFromRequest(req)
	want := NewRequestKey("GET", "/api/v2/projects/p1/locales", url.Values{
		"page":   {"1"},
		"branch": {"main"},
	})

	if !got.Equal(want) {
		t.Errorf("KeyFromRequest() = %q, want %q", got, want)
	}
}

func TestKeyFromRequest_EscapedSegments(t *testing.T) {
	escaped, _ := http.NewRequest("GET", "https://api.phraseapp.com/api/v2/projects/p1/keys/a%2Fb", nil)
	nested, _ := http.NewRequest("GET", "https://api.phraseapp.com/api/v2/projects/p1/keys/a/b", nil)

	if KeyFromRequest(escaped).Equal(KeyFromRequest(nested)) {
		t.Errorf("keys for %q and %q must differ", escaped.URL, nested.URL)
	}
}
