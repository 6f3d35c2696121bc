package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"souq/internal/catalog"
	"souq/internal/domain"
)

// Client talks to the remote product-listing API. It is the only component
// that sees raw listing records; everything it hands out has been normalized.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type pageResponse struct {
	Products []catalog.RawProduct `json:"products"`
	Page     int                  `json:"page"`
	Pages    int                  `json:"pages"`
	Total    int                  `json:"total"`
}

// FetchPage requests one catalog page. Category "all" (or empty) means no
// restriction. A response without pagination metadata is treated as the only
// page there is.
func (c *Client) FetchPage(ctx context.Context, page int, category string, limit int) ([]domain.Product, domain.Pagination, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if category != "" && category != "all" {
		q.Set("category", category)
	}

	var resp pageResponse
	if err := c.getJSON(ctx, "/products?"+q.Encode(), &resp); err != nil {
		return nil, domain.Pagination{}, err
	}

	meta := domain.Pagination{Page: resp.Page, Pages: resp.Pages, Total: resp.Total}
	if meta.Page < 1 {
		meta.Page = page
	}
	if meta.Pages < 1 {
		meta.Pages = 1
		meta.Total = len(resp.Products)
	}
	return catalog.NormalizePage(resp.Products), meta, nil
}

// GetProduct fetches and normalizes a single product.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var raw catalog.RawProduct
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &raw); err != nil {
		return domain.Product{}, err
	}
	return catalog.Normalize(raw), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream %s: status %d", path, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
