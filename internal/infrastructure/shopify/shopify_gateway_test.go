package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGateway(Config{
		AccessToken: "shpat_test",
		BaseURL:     srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected gateway error: %v", err)
	}
	return g, srv
}

func TestNewGateway_Validation(t *testing.T) {
	if _, err := NewGateway(Config{AccessToken: "tok"}); err != ErrMissingStoreDomain {
		t.Fatalf("expected ErrMissingStoreDomain, got %v", err)
	}
	if _, err := NewGateway(Config{StoreDomain: "shop.myshopify.com"}); err != ErrMissingAccessToken {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}

	g, err := NewGateway(Config{StoreDomain: "shop.myshopify.com", AccessToken: "tok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.baseURL != "https://shop.myshopify.com/admin/api/2025-01" {
		t.Fatalf("unexpected base url: %s", g.baseURL)
	}
}

func TestGateway_ListVariants(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/products/p1/variants.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "100" {
			t.Fatalf("unexpected limit %q", r.URL.Query().Get("limit"))
		}
		if r.Header.Get("X-Shopify-Access-Token") != "shpat_test" {
			t.Fatalf("missing access token header")
		}
		_, _ = w.Write([]byte(`{"variants":[
			{"id":1,"option1":"100x50 - standard","price":"8.50","created_at":"2025-01-02T03:04:05Z"},
			{"id":2,"option1":"200x100 - steel","price":"12.00","created_at":"2025-02-02T03:04:05+01:00"}
		]}`))
	})

	got, err := g.ListVariants(context.Background(), "p1", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Title != "100x50 - standard" || got[0].Price != "8.50" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got[0].CreatedAt.Equal(want) {
		t.Fatalf("unexpected created_at: %v", got[0].CreatedAt)
	}
}

func TestGateway_CreateVariant(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/products/p1/variants.json" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("missing content type")
		}

		var body map[string]map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		variant := body["variant"]
		if variant["option1"] != "100x50 - standard" || variant["price"] != "8.50" {
			t.Fatalf("unexpected variant payload: %+v", variant)
		}
		if variant["inventory_management"] != nil {
			t.Fatalf("inventory_management must be null: %+v", variant)
		}
		if variant["inventory_policy"] != "continue" || variant["fulfillment_service"] != "manual" {
			t.Fatalf("unexpected inventory payload: %+v", variant)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"variant":{"id":99,"option1":"100x50 - standard","price":"8.50","created_at":"2025-01-02T03:04:05Z"}}`))
	})

	got, err := g.CreateVariant(context.Background(), "p1", "100x50 - standard", 8.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 99 || got.Title != "100x50 - standard" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGateway_DeleteVariant(t *testing.T) {
	var gotPath string
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	if err := g.DeleteVariant(context.Background(), "p1", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products/p1/variants/42.json" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}

func TestGateway_AttachPriceMetafield(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/variants/42/metafields.json" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		mf := body["metafield"]
		if mf["namespace"] != "custom" || mf["key"] != "dynamic_price" {
			t.Fatalf("unexpected metafield target: %+v", mf)
		}
		if mf["value"] != "4511.43" || mf["type"] != "string" {
			t.Fatalf("unexpected metafield value: %+v", mf)
		}
		_, _ = w.Write([]byte(`{"metafield":{"id":1}}`))
	})

	if err := g.AttachPriceMetafield(context.Background(), 42, 4511.43); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGateway_Non2xxMapsToError(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"base":["something went wrong"]}}`))
	})

	if _, err := g.ListVariants(context.Background(), "p1", 100); err == nil {
		t.Fatalf("expected error on 422")
	}
	if _, err := g.CreateVariant(context.Background(), "p1", "t", 9.99); err == nil {
		t.Fatalf("expected error on 422")
	}
	if err := g.DeleteVariant(context.Background(), "p1", 1); err == nil {
		t.Fatalf("expected error on 422")
	}
	if err := g.AttachPriceMetafield(context.Background(), 1, 9.99); err == nil {
		t.Fatalf("expected error on 422")
	}
}
