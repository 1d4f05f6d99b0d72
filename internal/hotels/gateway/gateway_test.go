package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	hotelserrors "luxestay/internal/hotels/errors"
	"luxestay/pkg/config"
	"luxestay/pkg/logger"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*serpApiGateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SerpApiKey:      "test-key",
		SerpApiBaseURL:  server.URL + "/search.json",
		HotelsCurrency:  config.DefaultHotelsCurrency,
		HotelsCountry:   config.DefaultHotelsCountry,
		HotelsLanguage:  config.DefaultHotelsLanguage,
		UpstreamTimeout: 2 * time.Second,
		Log:             logger.Discard(),
	}
	gw := NewSerpApiGateway(cfg).(*serpApiGateway)
	gw.linkPrefix = server.URL + "/"
	return gw, server
}

func TestSearch_QueryParameters(t *testing.T) {
	var got url.Values
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"properties":[]}`))
	})

	_, err := gw.Search(context.Background(), SearchOptions{
		Query:        "Paris",
		CheckInDate:  "2030-05-01",
		CheckOutDate: "2030-05-04",
		Adults:       2,
		MinPrice:     0,
		MaxPrice:     9000,
		Bedrooms:     0,
		EcoCertified: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]string{
		"engine":         Engine,
		"api_key":        "test-key",
		"q":              "Paris",
		"check_in_date":  "2030-05-01",
		"check_out_date": "2030-05-04",
		"adults":         "2",
		"max_price":      "9000",
		"eco_certified":  "true",
		"currency":       "INR",
		"gl":             "in",
		"hl":             "en",
	}
	for key, want := range expected {
		if got.Get(key) != want {
			t.Errorf("expected %s=%s, got %q", key, want, got.Get(key))
		}
	}
	for _, absent := range []string{"min_price", "bedrooms", "bathrooms", "rooms", "sort_by", "free_cancellation", "next_page_token"} {
		if got.Has(absent) {
			t.Errorf("expected %s to be omitted, got %q", absent, got.Get(absent))
		}
	}
}

func TestSearch_LocaleOverride(t *testing.T) {
	var got url.Values
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := gw.Search(context.Background(), SearchOptions{
		Query:  "Lisbon",
		Locale: Locale{Currency: "EUR", Country: "pt"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get("currency") != "EUR" || got.Get("gl") != "pt" {
		t.Errorf("expected overridden locale, got currency=%s gl=%s", got.Get("currency"), got.Get("gl"))
	}
	if got.Get("hl") != "en" {
		t.Errorf("expected default language, got %s", got.Get("hl"))
	}
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		reason  error
	}{
		{
			"server error",
			func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			hotelserrors.ErrUpstreamRejected,
		},
		{
			"bad request",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"Missing query"}`))
			},
			hotelserrors.ErrUpstreamRejected,
		},
		{
			"error field in 200",
			func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"error":"Invalid API key."}`)) },
			hotelserrors.ErrUpstreamRejected,
		},
		{
			"malformed body",
			func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`<html>`)) },
			hotelserrors.ErrUpstreamRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newTestGateway(t, tt.handler)

			payload, err := gw.Search(context.Background(), SearchOptions{Query: "Paris"})
			if payload != nil {
				t.Errorf("expected no payload, got %v", payload)
			}
			if !errors.Is(err, hotelserrors.ErrNoResult) {
				t.Errorf("expected ErrNoResult, got %v", err)
			}
			if !errors.Is(err, tt.reason) {
				t.Errorf("expected %v, got %v", tt.reason, err)
			}
		})
	}
}

func TestSearch_TransportFailure(t *testing.T) {
	gw, server := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := gw.Search(context.Background(), SearchOptions{Query: "Paris"})
	if !errors.Is(err, hotelserrors.ErrNoResult) || !errors.Is(err, hotelserrors.ErrUpstreamUnavailable) {
		t.Errorf("expected unavailable no-result error, got %v", err)
	}
}

func TestDetail_SendsPropertyToken(t *testing.T) {
	var got url.Values
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"name":"Le Meurice"}`))
	})

	payload, err := gw.Detail(context.Background(), "tok-1", "2030-05-01", "", Locale{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["name"] != "Le Meurice" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if got.Get("property_token") != "tok-1" || got.Get("engine") != Engine {
		t.Errorf("unexpected query: %v", got)
	}
	if got.Get("check_in_date") != "2030-05-01" || got.Has("check_out_date") {
		t.Errorf("expected only check_in_date, got %v", got)
	}
}

func TestDetailByLink(t *testing.T) {
	var got url.Values
	gw, server := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"place_results":{"name":"Linked"}}`))
	})

	link := server.URL + "/search.json?engine=google_hotels_autocomplete&property_token=p1&api_key=leaked"
	if _, err := gw.DetailByLink(context.Background(), link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get("api_key") != "test-key" {
		t.Errorf("expected api_key to be overwritten, got %s", got.Get("api_key"))
	}
	if got.Get("engine") != "google_hotels_autocomplete" {
		t.Errorf("expected existing engine to be kept, got %s", got.Get("engine"))
	}
	if got.Get("property_token") != "p1" {
		t.Errorf("expected existing params to be kept, got %v", got)
	}
}

func TestRewriteLink(t *testing.T) {
	rewritten, err := RewriteLink("https://serpapi.com/search.json?property_token=p1", "k", LinkPrefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, _ := url.Parse(rewritten)
	q := parsed.Query()
	if q.Get("engine") != Engine || q.Get("api_key") != "k" || q.Get("property_token") != "p1" {
		t.Errorf("unexpected rewritten link: %s", rewritten)
	}

	for _, bad := range []string{"http://serpapi.com/search.json", "https://evil.example/serpapi.com/", ""} {
		if _, err := RewriteLink(bad, "k", LinkPrefix); !errors.Is(err, hotelserrors.ErrInvalidLink) {
			t.Errorf("expected ErrInvalidLink for %q, got %v", bad, err)
		}
	}
}
