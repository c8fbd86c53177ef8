package foodlog

import (
	"testing"

	"nutriplan-cli/internal/model"
)

func TestComputeTotals_EmptyLog(t *testing.T) {
	got := ComputeTotals(model.DailyLog{Date: "2026-08-31"})
	if got != (model.Nutrition{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestComputeTotals_FieldwiseSum(t *testing.T) {
	log := model.DailyLog{
		Date: "2026-08-31",
		Items: []model.LoggedItem{
			{ID: "1", Name: "Omelette", Type: model.SourceMeal,
				Nutrition: model.Nutrition{Calories: 250, Protein: 18, Carbs: 2, Fat: 19}},
			{ID: "2", Name: "Cereal", Type: model.SourceProduct,
				Nutrition: model.Nutrition{Calories: 400, Protein: 8, Carbs: 70, Fat: 5}},
			// Source omitted nutrition entirely: counts as all zeros.
			{ID: "3", Name: "Water", Type: model.SourceProduct},
		},
	}

	got := ComputeTotals(log)
	want := model.Nutrition{Calories: 650, Protein: 26, Carbs: 72, Fat: 24}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
}

func TestComputeTotals_NegativeFieldsTreatedAsZero(t *testing.T) {
	log := model.DailyLog{
		Date: "2026-08-31",
		Items: []model.LoggedItem{
			{ID: "1", Nutrition: model.Nutrition{Calories: -100, Protein: 10}},
		},
	}
	got := ComputeTotals(log)
	if got.Calories != 0 || got.Protein != 10 {
		t.Fatalf("totals = %+v", got)
	}
}
