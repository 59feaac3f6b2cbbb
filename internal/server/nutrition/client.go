// Package nutrition wraps the upstream natural-language nutrition API. The
// upstream reports nutrients per 100 g of the queried food.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karnadev/dragonsrealm/internal/common"
)

const defaultBaseURL = "https://trackapi.nutritionix.com"

// Upstream attribute ids for the tracked vitamins.
const (
	attrVitaminA = 320
	attrVitaminC = 401
	attrVitaminD = 328
	attrVitaminE = 323
)

// ErrNoResults means the upstream answered but matched no food.
var ErrNoResults = errors.New("no food matched the query")

// UpstreamError preserves the upstream HTTP status so the proxy endpoint can
// forward it.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("nutrition request failed with status %d", e.Status)
}

// Vitamins holds tracked vitamin amounts.
type Vitamins struct {
	A float64 `json:"a"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
}

// Record is a parsed per-100g nutrition record. Fields missing upstream stay
// zero.
type Record struct {
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       float64  `json:"fiber"`
	Sugar       float64  `json:"sugar"`
	Sodium      float64  `json:"sodium"`
	Potassium   float64  `json:"potassium"`
	Cholesterol float64  `json:"cholesterol"`
	Vitamins    Vitamins `json:"vitamins"`
}

// Client calls the nutrition API. AppID and APIKey are required; BaseURL and
// HTTPClient have usable defaults.
type Client struct {
	AppID      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Configured reports whether upstream credentials are present.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.AppID) != "" && strings.TrimSpace(c.APIKey) != ""
}

// Lookup resolves a free-text food query into a nutrition record.
func (c *Client) Lookup(ctx context.Context, query string) (Record, error) {
	if !c.Configured() {
		return Record{}, common.ErrNotConfigured
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return Record{}, fmt.Errorf("marshal nutrition payload: %w", err)
	}

	url := baseURL + "/v2/natural/nutrients"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Record{}, fmt.Errorf("create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.AppID)
	req.Header.Set("x-app-key", c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("execute nutrition request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, fmt.Errorf("read nutrition response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Record{}, &UpstreamError{Status: resp.StatusCode}
	}

	var parsed naturalNutrientsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Record{}, fmt.Errorf("decode nutrition response: %w", err)
	}
	if len(parsed.Foods) == 0 {
		return Record{}, ErrNoResults
	}

	return parsed.Foods[0].toRecord(), nil
}

type naturalNutrientsResponse struct {
	Foods []upstreamFood `json:"foods"`
}

type upstreamFood struct {
	FoodName          string             `json:"food_name"`
	Calories          float64            `json:"nf_calories"`
	Protein           float64            `json:"nf_protein"`
	TotalCarbohydrate float64            `json:"nf_total_carbohydrate"`
	TotalFat          float64            `json:"nf_total_fat"`
	DietaryFiber      float64            `json:"nf_dietary_fiber"`
	Sugars            float64            `json:"nf_sugars"`
	Sodium            float64            `json:"nf_sodium"`
	Potassium         float64            `json:"nf_potassium"`
	Cholesterol       float64            `json:"nf_cholesterol"`
	FullNutrients     []upstreamNutrient `json:"full_nutrients"`
}

type upstreamNutrient struct {
	AttrID int     `json:"attr_id"`
	Value  float64 `json:"value"`
}

// toRecord maps loosely-typed upstream fields onto a typed record. Absent
// numeric fields decode as zero, which is exactly the defaulting we want.
func (f upstreamFood) toRecord() Record {
	r := Record{
		Name:        f.FoodName,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.TotalCarbohydrate,
		Fat:         f.TotalFat,
		Fiber:       f.DietaryFiber,
		Sugar:       f.Sugars,
		Sodium:      f.Sodium,
		Potassium:   f.Potassium,
		Cholesterol: f.Cholesterol,
	}
	for _, n := range f.FullNutrients {
		switch n.AttrID {
		case attrVitaminA:
			r.Vitamins.A = n.Value
		case attrVitaminC:
			r.Vitamins.C = n.Value
		case attrVitaminD:
			r.Vitamins.D = n.Value
		case attrVitaminE:
			r.Vitamins.E = n.Value
		}
	}
	return r
}
