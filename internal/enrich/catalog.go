// =============================================================================
// Sales Analytics System - Product Catalog Client
// =============================================================================
//
// This module fetches the remote product catalog used for enrichment. The
// contract is deliberately forgiving: one GET with a bounded timeout, and any
// network, HTTP or decode failure yields an empty product list. There is no
// retry and no partial-success signaling beyond empty-vs-nonempty — the
// pipeline simply continues with every record unmatched.
//
// =============================================================================

package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Product is one catalog descriptor as returned by the catalog endpoint.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// CatalogInfo holds the attributes kept for enrichment.
type CatalogInfo struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// Mapping maps a numeric product id to its catalog attributes. It is built
// once per run and read-only afterward.
type Mapping map[int]CatalogInfo

// Client fetches products from the catalog endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a catalog client with a bounded request timeout.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FetchProducts performs the single catalog request. It never returns an
// error: any failure is logged and reported as an empty product list.
func (c *Client) FetchProducts(ctx context.Context) []Product {
	products, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("url", c.url).Msg("catalog fetch failed, continuing unenriched")
		return nil
	}
	c.log.Info().Int("products", len(products)).Msg("fetched product catalog")
	return products
}

func (c *Client) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}

	return payload.Products, nil
}

// BuildMapping indexes catalog products by their numeric id.
func BuildMapping(products []Product) Mapping {
	mapping := make(Mapping, len(products))
	for _, p := range products {
		mapping[p.ID] = CatalogInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
