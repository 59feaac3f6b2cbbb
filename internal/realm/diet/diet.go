// Package diet implements nutrient scaling and aggregation for the diet
// tracker. Lookup results are per 100 g; an entry stores the record scaled to
// the consumed quantity.
package diet

import (
	"strconv"
	"time"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

// referenceGrams is the quantity the upstream nutrition API reports against.
const referenceGrams = 100.0

// Scale multiplies every numeric field of the record, vitamins included, by
// factor. The name is left untouched.
func Scale(r models.NutritionRecord, factor float64) models.NutritionRecord {
	return models.NutritionRecord{
		Name:        r.Name,
		Calories:    r.Calories * factor,
		Protein:     r.Protein * factor,
		Carbs:       r.Carbs * factor,
		Fat:         r.Fat * factor,
		Fiber:       r.Fiber * factor,
		Sugar:       r.Sugar * factor,
		Sodium:      r.Sodium * factor,
		Potassium:   r.Potassium * factor,
		Cholesterol: r.Cholesterol * factor,
		Vitamins: models.Vitamins{
			A: r.Vitamins.A * factor,
			C: r.Vitamins.C * factor,
			D: r.Vitamins.D * factor,
			E: r.Vitamins.E * factor,
		},
	}
}

// NewEntry scales a per-100g record to the consumed quantity and stamps it.
// Non-positive quantities are rejected with common.ErrInvalidQuantity and
// nothing is stored.
func NewEntry(record models.NutritionRecord, grams float64, now time.Time) (models.DietEntry, error) {
	if grams <= 0 {
		return models.DietEntry{}, common.ErrInvalidQuantity
	}
	return models.DietEntry{
		NutritionRecord: Scale(record, grams/referenceGrams),
		ID:              models.NewID(now),
		Timestamp:       models.DisplayTime(now),
		Quantity:        grams,
	}, nil
}

// AggregateTotals sums each numeric field across entries. Fields absent from
// older entries decode as zero and contribute nothing.
func AggregateTotals(entries []models.DietEntry) models.NutritionRecord {
	var total models.NutritionRecord
	for _, e := range entries {
		total.Calories += e.Calories
		total.Protein += e.Protein
		total.Carbs += e.Carbs
		total.Fat += e.Fat
		total.Fiber += e.Fiber
		total.Sugar += e.Sugar
		total.Sodium += e.Sodium
		total.Potassium += e.Potassium
		total.Cholesterol += e.Cholesterol
		total.Vitamins.A += e.Vitamins.A
		total.Vitamins.C += e.Vitamins.C
		total.Vitamins.D += e.Vitamins.D
		total.Vitamins.E += e.Vitamins.E
	}
	return total
}

// FormatAmount renders a nutrient value with two decimal places. A nil value
// means the amount was never known and renders as "N/A", not "0.00".
func FormatAmount(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
