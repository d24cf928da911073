package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"tagshop_variants/internal/domain/entities"
	"tagshop_variants/internal/usecase/interfaces"
)

var (
	ErrMissingStoreDomain = errors.New("missing SHOPIFY_STORE")
	ErrMissingAccessToken = errors.New("missing ACCESS_TOKEN")
)

const (
	defaultAPIVersion = "2025-01"

	// A hung Admin API call must not stall a request forever.
	defaultTimeout = 15 * time.Second

	accessTokenHeader = "X-Shopify-Access-Token"

	metafieldNamespace = "custom"
	metafieldKey       = "dynamic_price"
)

// Config carries everything the gateway needs, so callers can swap the
// upstream endpoint for a test double instead of reaching for globals.
type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	// BaseURL overrides the https://{store}/admin/api/{version} base.
	// Intended for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// ConfigFromEnv reads the production configuration.
//
// Env vars: SHOPIFY_STORE, ACCESS_TOKEN, SHOPIFY_API_VERSION (optional).
func ConfigFromEnv() Config {
	return Config{
		StoreDomain: strings.TrimSpace(os.Getenv("SHOPIFY_STORE")),
		AccessToken: strings.TrimSpace(os.Getenv("ACCESS_TOKEN")),
		APIVersion:  strings.TrimSpace(os.Getenv("SHOPIFY_API_VERSION")),
	}
}

// Gateway talks to the Shopify Admin REST API. It implements
// interfaces.IVariantGateway.

type Gateway struct {
	baseURL     string
	accessToken string
	client      *http.Client

	mockMode   bool
	mockNextID atomic.Int64
}

var _ interfaces.IVariantGateway = (*Gateway)(nil)

func NewGateway(cfg Config) (*Gateway, error) {
	if isShopifyMockEnabled() {
		log.Printf("[shopify][gateway] mock mode enabled")
		g := &Gateway{mockMode: true}
		g.mockNextID.Store(time.Now().UTC().UnixNano())
		return g, nil
	}

	if cfg.BaseURL == "" {
		if cfg.StoreDomain == "" {
			return nil, ErrMissingStoreDomain
		}
		version := cfg.APIVersion
		if version == "" {
			version = defaultAPIVersion
		}
		cfg.BaseURL = fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreDomain, version)
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	log.Printf("[shopify][gateway] client initialized base_url=%s", cfg.BaseURL)
	return &Gateway{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		client:      client,
	}, nil
}

// Wire shapes of the Admin REST API.

type variantPayload struct {
	ID        int64  `json:"id"`
	Option1   string `json:"option1"`
	Price     string `json:"price"`
	CreatedAt string `json:"created_at"`
}

type variantListEnvelope struct {
	Variants []variantPayload `json:"variants"`
}

type variantEnvelope struct {
	Variant variantPayload `json:"variant"`
}

type createVariantBody struct {
	Variant struct {
		Option1             string  `json:"option1"`
		Price               string  `json:"price"`
		InventoryManagement *string `json:"inventory_management"`
		InventoryPolicy     string  `json:"inventory_policy"`
		FulfillmentService  string  `json:"fulfillment_service"`
	} `json:"variant"`
}

type metafieldBody struct {
	Metafield struct {
		Namespace string `json:"namespace"`
		Key       string `json:"key"`
		Value     string `json:"value"`
		Type      string `json:"type"`
	} `json:"metafield"`
}

func (g *Gateway) ListVariants(ctx context.Context, productID string, limit int) ([]entities.VariantRecord, error) {
	if g.mockMode {
		return nil, nil
	}

	url := fmt.Sprintf("%s/products/%s/variants.json?limit=%d", g.baseURL, productID, limit)
	var envelope variantListEnvelope
	if err := g.do(ctx, http.MethodGet, url, nil, &envelope); err != nil {
		return nil, err
	}

	records := make([]entities.VariantRecord, 0, len(envelope.Variants))
	for _, v := range envelope.Variants {
		records = append(records, toVariantRecord(v))
	}
	return records, nil
}

func (g *Gateway) CreateVariant(ctx context.Context, productID, title string, price float64) (entities.VariantRecord, error) {
	if g.mockMode {
		rec := entities.VariantRecord{
			ID:        g.mockNextID.Add(1),
			Title:     title,
			Price:     formatPrice(price),
			CreatedAt: time.Now().UTC(),
		}
		log.Printf("[shopify][gateway] mock create success variant_id=%d", rec.ID)
		return rec, nil
	}

	var body createVariantBody
	body.Variant.Option1 = title
	body.Variant.Price = formatPrice(price)
	// Custom variants are print-on-demand: no stock tracking, keep selling.
	body.Variant.InventoryManagement = nil
	body.Variant.InventoryPolicy = "continue"
	body.Variant.FulfillmentService = "manual"

	url := fmt.Sprintf("%s/products/%s/variants.json", g.baseURL, productID)
	var envelope variantEnvelope
	if err := g.do(ctx, http.MethodPost, url, body, &envelope); err != nil {
		return entities.VariantRecord{}, err
	}
	return toVariantRecord(envelope.Variant), nil
}

func (g *Gateway) DeleteVariant(ctx context.Context, productID string, variantID int64) error {
	if g.mockMode {
		return nil
	}

	url := fmt.Sprintf("%s/products/%s/variants/%d.json", g.baseURL, productID, variantID)
	return g.do(ctx, http.MethodDelete, url, nil, nil)
}

func (g *Gateway) AttachPriceMetafield(ctx context.Context, variantID int64, price float64) error {
	if g.mockMode {
		return nil
	}

	var body metafieldBody
	body.Metafield.Namespace = metafieldNamespace
	body.Metafield.Key = metafieldKey
	body.Metafield.Value = formatPrice(price)
	body.Metafield.Type = "string"

	url := fmt.Sprintf("%s/variants/%d/metafields.json", g.baseURL, variantID)
	return g.do(ctx, http.MethodPost, url, body, nil)
}

// do performs one Admin API round trip. A non-2xx status maps to an error
// carrying a snippet of the response body; decoding is skipped when out is
// nil.
func (g *Gateway) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set(accessTokenHeader, g.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("shopify: %s %s returned %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toVariantRecord(v variantPayload) entities.VariantRecord {
	createdAt, err := time.Parse(time.RFC3339, v.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return entities.VariantRecord{
		ID:        v.ID,
		Title:     v.Option1,
		Price:     v.Price,
		CreatedAt: createdAt,
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func isShopifyMockEnabled() bool {
	for _, key := range []string{"VARIANT_GATEWAY_MOCK", "SHOPIFY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
