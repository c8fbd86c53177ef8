package foodlog

import "nutriplan-cli/internal/model"

// ComputeTotals sums nutrition field-wise over the log's items. Missing
// fields are zero by construction; negative values (which should never be
// persisted) are treated as 0 so totals stay non-negative.
func ComputeTotals(log model.DailyLog) model.Nutrition {
	var t model.Nutrition
	for _, it := range log.Items {
		t.Calories += nonNegative(it.Nutrition.Calories)
		t.Protein += nonNegative(it.Nutrition.Protein)
		t.Carbs += nonNegative(it.Nutrition.Carbs)
		t.Fat += nonNegative(it.Nutrition.Fat)
	}
	return t
}

func nonNegative(v float64) float64 {
	// NaN compares false against everything, so this also maps NaN to 0.
	if v > 0 {
		return v
	}
	return 0
}
