// Package api wraps the third-party recipe and product HTTP APIs behind
// plain request/response functions. The collaborator contract is fail-soft:
// list lookups degrade any network or parse failure to an empty result, and
// a detail lookup reports ErrNotFound instead of distinguishing failures.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nutriplan-cli/internal/model"

	"github.com/tidwall/gjson"
)

const defaultMealAPIBase = "https://www.themealdb.com/api/json/v1/1"

// ErrNotFound signals that a detail lookup matched no record.
var ErrNotFound = errors.New("not found")

// MealClient fetches recipes from TheMealDB.
type MealClient struct {
	baseURL string
	client  *http.Client
}

// NewMealClient returns a client for the given API base. An empty base
// selects the public TheMealDB endpoint.
func NewMealClient(baseURL string) *MealClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultMealAPIBase
	}
	return &MealClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchMeals searches recipes by name. An empty query browses the default
// "chicken" selection, matching the home screen's initial load.
func (c *MealClient) SearchMeals(ctx context.Context, query string) []model.MealSummary {
	if strings.TrimSpace(query) == "" {
		query = "chicken"
	}
	body, err := c.get(ctx, "/search.php?s="+url.QueryEscape(query))
	if err != nil {
		return nil
	}
	return decodeMealSummaries(body)
}

// MealsByCategory lists recipes in a category.
func (c *MealClient) MealsByCategory(ctx context.Context, category string) []model.MealSummary {
	body, err := c.get(ctx, "/filter.php?c="+url.QueryEscape(category))
	if err != nil {
		return nil
	}
	return decodeMealSummaries(body)
}

// MealsByArea lists recipes from a cuisine area.
func (c *MealClient) MealsByArea(ctx context.Context, area string) []model.MealSummary {
	body, err := c.get(ctx, "/filter.php?a="+url.QueryEscape(area))
	if err != nil {
		return nil
	}
	return decodeMealSummaries(body)
}

// Categories lists the browsable meal categories.
func (c *MealClient) Categories(ctx context.Context) []model.MealCategory {
	body, err := c.get(ctx, "/categories.php")
	if err != nil {
		return nil
	}
	var out []model.MealCategory
	gjson.GetBytes(body, "categories").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("strCategory").String()
		if name == "" {
			return true
		}
		out = append(out, model.MealCategory{
			Name:  name,
			Thumb: v.Get("strCategoryThumb").String(),
		})
		return true
	})
	return out
}

// MealByID fetches one full recipe record. Returns ErrNotFound when the id
// matches nothing or the lookup fails.
func (c *MealClient) MealByID(ctx context.Context, id string) (*model.Meal, error) {
	body, err := c.get(ctx, "/lookup.php?i="+url.QueryEscape(id))
	if err != nil {
		return nil, ErrNotFound
	}
	rec := gjson.GetBytes(body, "meals.0")
	if !rec.Exists() || rec.Type == gjson.Null {
		return nil, ErrNotFound
	}

	meal := &model.Meal{
		ID:           rec.Get("idMeal").String(),
		Name:         rec.Get("strMeal").String(),
		Category:     rec.Get("strCategory").String(),
		Area:         rec.Get("strArea").String(),
		Thumb:        rec.Get("strMealThumb").String(),
		Instructions: rec.Get("strInstructions").String(),
	}
	// TheMealDB spreads ingredients over 20 numbered field pairs.
	for i := 1; i <= 20; i++ {
		name := strings.TrimSpace(rec.Get(fmt.Sprintf("strIngredient%d", i)).String())
		if name == "" {
			continue
		}
		meal.Ingredients = append(meal.Ingredients, model.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(rec.Get(fmt.Sprintf("strMeasure%d", i)).String()),
		})
	}
	return meal, nil
}

func (c *MealClient) get(ctx context.Context, path string) ([]byte, error) {
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

func decodeMealSummaries(body []byte) []model.MealSummary {
	var out []model.MealSummary
	gjson.GetBytes(body, "meals").ForEach(func(_, v gjson.Result) bool {
		id := v.Get("idMeal").String()
		if id == "" {
			return true
		}
		out = append(out, model.MealSummary{
			ID:       id,
			Name:     v.Get("strMeal").String(),
			Thumb:    v.Get("strMealThumb").String(),
			Category: v.Get("strCategory").String(),
			Area:     v.Get("strArea").String(),
		})
		return true
	})
	return out
}
