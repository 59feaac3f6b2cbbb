package models

// Vitamins holds the tracked vitamin amounts of a food.
type Vitamins struct {
	A float64 `json:"a"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
}

// NutritionRecord is the nutrient breakdown of a food. Lookup results are
// per 100 g; values missing upstream are zero.
type NutritionRecord struct {
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

// DietEntry is one consumed food: a nutrition record already scaled to the
// consumed quantity.
type DietEntry struct {
	NutritionRecord
	ID        int64   `json:"id"`
	Timestamp string  `json:"timestamp"`
	Quantity  float64 `json:"quantity"`
}

func (e DietEntry) Key() int64 { return e.ID }

// Document is a stored document's metadata as returned by the server.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate"`
	Size       string `json:"size"`
}
