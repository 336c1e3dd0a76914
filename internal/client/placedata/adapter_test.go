package placedataclient

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/GregMSThompson/travel-backend/pkg/helpers"
)

func TestFetchSendsOneRequestAndReturnsBody(t *testing.T) {
	var calls int32
	var gotCity, gotKey, gotPath string
	body := []byte(`{"data":[{"temp":21.5,"city_name":"Lisbon"}]}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		gotPath = r.URL.Path
		gotCity = r.URL.Query().Get("city")
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	a := NewAdapter(WeatherConfig(srv.URL+"/v2.0/current", "wb-key"), srv.Client())
	got, err := a.Fetch(helpers.TestCtx(), "Lisbon")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
	if gotPath != "/v2.0/current" {
		t.Fatalf("path mismatch: %q", gotPath)
	}
	if gotCity != "Lisbon" || gotKey != "wb-key" {
		t.Fatalf("query mismatch: city=%q key=%q", gotCity, gotKey)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("body mismatch: %s", got)
	}
}

func TestFetchReturnsErrorStatusBody(t *testing.T) {
	body := []byte(`{"errors":[{"code":"rate_limited"}]}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	a := NewAdapter(NewsConfig(srv.URL, "gn-key"), srv.Client())
	got, err := a.Fetch(helpers.TestCtx(), "Lisbon")
	if err != nil {
		t.Fatalf("non-2xx should not be an error, got %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("body mismatch: %s", got)
	}
}

func TestFetchPresetParams(t *testing.T) {
	tests := []struct {
		name       string
		cfg        func(baseURL string) Config
		placeParam string
		keyParam   string
	}{
		{name: "news", cfg: func(u string) Config { return NewsConfig(u, "k") }, placeParam: "q", keyParam: "apikey"},
		{name: "places", cfg: func(u string) Config { return PlacesConfig(u, "k") }, placeParam: "address", keyParam: "key"},
		{name: "weather", cfg: func(u string) Config { return WeatherConfig(u, "k") }, placeParam: "city", keyParam: "key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var place, key string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				place = r.URL.Query().Get(tc.placeParam)
				key = r.URL.Query().Get(tc.keyParam)
				_, _ = w.Write([]byte("{}"))
			}))
			defer srv.Close()

			a := NewAdapter(tc.cfg(srv.URL), srv.Client())
			if _, err := a.Fetch(helpers.TestCtx(), "São Paulo"); err != nil {
				t.Fatalf("Fetch error: %v", err)
			}
			if place != "São Paulo" {
				t.Fatalf("place mismatch: %q", place)
			}
			if key != "k" {
				t.Fatalf("key mismatch: %q", key)
			}
		})
	}
}

func TestFetchKeyHeader(t *testing.T) {
	var token, q, count string
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Subscription-Token")
		q = r.URL.Query().Get("q")
		count = r.URL.Query().Get("count")
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"web":{"results":[]}}`))
	}))
	defer srv.Close()

	a := NewAdapter(SearchConfig(srv.URL, "brave-key"), srv.Client())
	if _, err := a.Fetch(helpers.TestCtx(), "Lisbon"); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if token != "brave-key" {
		t.Fatalf("header key mismatch: %q", token)
	}
	if q != "Lisbon" || count != "5" {
		t.Fatalf("query mismatch: q=%q count=%q", q, count)
	}
	if strings.Contains(rawQuery, "brave-key") {
		t.Fatalf("key leaked into query string: %q", rawQuery)
	}
}

func TestFetchForwardsEmptyPlace(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.URL.Query()["address"]
		_, _ = w.Write([]byte(`{"status":"INVALID_REQUEST"}`))
	}))
	defer srv.Close()

	a := NewAdapter(PlacesConfig(srv.URL, "k"), srv.Client())
	if _, err := a.Fetch(helpers.TestCtx(), ""); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if !present {
		t.Fatalf("expected empty place to be forwarded")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetchPropagatesTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}

	a := NewAdapter(WeatherConfig("http://weather.invalid/current", "secret-key"), client)
	_, err := a.Fetch(helpers.TestCtx(), "Lisbon")
	if err != boom {
		t.Fatalf("expected transport error unchanged, got %v", err)
	}
}

func TestNameAndDescription(t *testing.T) {
	a := NewAdapter(NewsConfig("http://news.local", ""), nil)
	if a.Name() != NewsToolName {
		t.Fatalf("name mismatch: %q", a.Name())
	}
	if a.Description() == "" {
		t.Fatalf("expected a description")
	}
}
