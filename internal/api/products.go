package api

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nutriplan-cli/internal/model"

	"github.com/tidwall/gjson"
)

const defaultProductAPIBase = "https://world.openfoodfacts.org"

// ProductClient fetches packaged-food records from Open Food Facts.
type ProductClient struct {
	baseURL string
	client  *http.Client
}

// NewProductClient returns a client for the given API base. An empty base
// selects the public Open Food Facts endpoint.
func NewProductClient(baseURL string) *ProductClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultProductAPIBase
	}
	return &ProductClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchProducts searches packaged foods by name (first 20 matches).
func (c *ProductClient) SearchProducts(ctx context.Context, name string) []model.Product {
	q := url.Values{}
	q.Set("search_terms", name)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", "20")

	body, err := c.get(ctx, "/cgi/search.pl?"+q.Encode())
	if err != nil {
		return nil
	}

	var out []model.Product
	gjson.GetBytes(body, "products").ForEach(func(_, v gjson.Result) bool {
		out = append(out, decodeProduct(v))
		return true
	})
	return out
}

// ProductByBarcode looks up a single product by barcode. The API's
// status field is 1 for a hit; anything else (including failures) yields
// an empty result.
func (c *ProductClient) ProductByBarcode(ctx context.Context, barcode string) []model.Product {
	body, err := c.get(ctx, "/api/v0/product/"+url.PathEscape(barcode)+".json")
	if err != nil {
		return nil
	}
	if gjson.GetBytes(body, "status").Int() != 1 {
		return nil
	}
	p := decodeProduct(gjson.GetBytes(body, "product"))
	return []model.Product{p}
}

func decodeProduct(v gjson.Result) model.Product {
	// The nutriments object is sprawling and loosely typed; gjson keeps the
	// per-100g lookups tolerant of missing keys. Values are rounded to whole
	// units for display and logging.
	nut := v.Get("nutriments")
	return model.Product{
		Code:       v.Get("code").String(),
		Name:       v.Get("product_name").String(),
		Brands:     v.Get("brands").String(),
		Image:      v.Get("image_front_small_url").String(),
		NutriScore: v.Get("nutriscore_grade").String(),
		Nutrition: model.Nutrition{
			Calories: math.Round(nut.Get("energy-kcal_100g").Float()),
			Protein:  math.Round(nut.Get("proteins_100g").Float()),
			Carbs:    math.Round(nut.Get("carbohydrates_100g").Float()),
			Fat:      math.Round(nut.Get("fat_100g").Float()),
		},
	}
}

func (c *ProductClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
