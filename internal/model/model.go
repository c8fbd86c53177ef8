package model

// SourceType records where a logged item came from. Display-only provenance.
type SourceType string

const (
	SourceMeal    SourceType = "Meal"
	SourceProduct SourceType = "Product"
)

// Nutrition holds the four tracked nutrient values. Calories are kcal, the
// rest are grams. Fields missing at the source default to 0.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LoggedItem is one consumed entry in the daily log.
type LoggedItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	Type      SourceType `json:"type"`
	Nutrition Nutrition  `json:"nutrition"`
}

// DailyLog is the single persisted journal record. Date is the local
// calendar date (YYYY-MM-DD) the log was created for; Items preserve
// insertion order and are append-only except for explicit removal.
type DailyLog struct {
	Date  string       `json:"date"`
	Items []LoggedItem `json:"items"`
}

// Limits are the daily nutrient targets used for percent-of-limit display.
type Limits struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultLimits mirrors the stock daily targets (2000 kcal, 50/250/65 g).
func DefaultLimits() Limits {
	return Limits{Calories: 2000, Protein: 50, Carbs: 250, Fat: 65}
}

// MealSummary is a lightweight recipe row for listing/search results.
type MealSummary struct {
	ID       string `json:"idMeal"`
	Name     string `json:"strMeal"`
	Thumb    string `json:"strMealThumb"`
	Category string `json:"strCategory,omitempty"`
	Area     string `json:"strArea,omitempty"`
}

// Ingredient pairs a recipe ingredient with its human-readable measure.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Meal is a full recipe record from the detail lookup.
type Meal struct {
	ID           string       `json:"idMeal"`
	Name         string       `json:"strMeal"`
	Category     string       `json:"strCategory"`
	Area         string       `json:"strArea"`
	Thumb        string       `json:"strMealThumb"`
	Instructions string       `json:"strInstructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// MealCategory is a browsable recipe category.
type MealCategory struct {
	Name  string `json:"strCategory"`
	Thumb string `json:"strCategoryThumb,omitempty"`
}

// Product is a packaged food record with per-100g nutrition facts.
type Product struct {
	Code       string    `json:"code,omitempty"`
	Name       string    `json:"product_name"`
	Brands     string    `json:"brands,omitempty"`
	Image      string    `json:"image_front_small_url,omitempty"`
	NutriScore string    `json:"nutriscore_grade,omitempty"`
	Nutrition  Nutrition `json:"nutrition"`
}
