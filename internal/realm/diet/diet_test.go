package diet

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

var dietNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleRecord() models.NutritionRecord {
	return models.NutritionRecord{
		Name:        "banana",
		Calories:    89,
		Protein:     1.1,
		Carbs:       22.8,
		Fat:         0.3,
		Fiber:       2.6,
		Sugar:       12.2,
		Sodium:      1,
		Potassium:   358,
		Cholesterol: 0,
		Vitamins:    models.Vitamins{A: 3, C: 8.7, D: 0, E: 0.1},
	}
}

func TestScale_DoublesNumericLeaves(t *testing.T) {
	got := Scale(sampleRecord(), 2.0)

	assert.Equal(t, "banana", got.Name)
	assert.InDelta(t, 178, got.Calories, 1e-9)
	assert.InDelta(t, 2.2, got.Protein, 1e-9)
	assert.InDelta(t, 45.6, got.Carbs, 1e-9)
	assert.InDelta(t, 716, got.Potassium, 1e-9)
	assert.InDelta(t, 17.4, got.Vitamins.C, 1e-9)
	assert.InDelta(t, 0.2, got.Vitamins.E, 1e-9)
}

func TestScale_IdentityAtFactorOne(t *testing.T) {
	record := sampleRecord()
	if diff := cmp.Diff(record, Scale(record, 1.0)); diff != "" {
		t.Fatalf("scale by 1.0 is not the identity (-want +got):\n%s", diff)
	}
}

func TestNewEntry_ScalesPerHundredGrams(t *testing.T) {
	// 200 g of a per-100g 89 kcal food stores 178.00 calories.
	e, err := NewEntry(sampleRecord(), 200, dietNow)
	require.NoError(t, err)
	assert.Equal(t, "178.00", FormatAmount(&e.Calories))
	assert.Equal(t, 200.0, e.Quantity)
	assert.Equal(t, dietNow.UnixMilli(), e.ID)
}

func TestNewEntry_NonPositiveQuantityRejected(t *testing.T) {
	for _, grams := range []float64{0, -50} {
		_, err := NewEntry(sampleRecord(), grams, dietNow)
		assert.ErrorIs(t, err, common.ErrInvalidQuantity)
	}
}

func TestAggregateTotals(t *testing.T) {
	entries := []models.DietEntry{
		{NutritionRecord: models.NutritionRecord{Calories: 178, Protein: 2.2, Vitamins: models.Vitamins{C: 17.4}}},
		{NutritionRecord: models.NutritionRecord{Calories: 52, Protein: 0.3, Vitamins: models.Vitamins{C: 4.6}}},
		// legacy entry with only calories recorded
		{NutritionRecord: models.NutritionRecord{Calories: 100}},
	}

	total := AggregateTotals(entries)
	assert.InDelta(t, 330, total.Calories, 1e-9)
	assert.InDelta(t, 2.5, total.Protein, 1e-9)
	assert.InDelta(t, 22, total.Vitamins.C, 1e-9)
	assert.Zero(t, total.Fat)
}

func TestAggregateTotals_Empty(t *testing.T) {
	total := AggregateTotals(nil)
	assert.Zero(t, total.Calories)
}

func TestFormatAmount(t *testing.T) {
	v := 12.3456
	assert.Equal(t, "12.35", FormatAmount(&v))

	zero := 0.0
	assert.Equal(t, "0.00", FormatAmount(&zero))

	assert.Equal(t, "N/A", FormatAmount(nil))
}
