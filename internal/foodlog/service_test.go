package foodlog

import (
	"context"
	"strings"
	"testing"
	"time"

	"nutriplan-cli/internal/model"
	"nutriplan-cli/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.Store{Dir: t.TempDir()}, NewNotifier())
}

func TestService_InitializeSeedsPersistedLogBeforeAnyRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	// A fresh process has a persisted record without any Log call.
	raw, ok, err := svc.store.Get(ctx, logKey)
	if err != nil || !ok {
		t.Fatalf("expected seeded record, ok=%v err=%v", ok, err)
	}
	if want := `"date":"` + time.Now().Format("2006-01-02") + `"`; !strings.Contains(raw, want) {
		t.Fatalf("seeded payload %q does not contain %q", raw, want)
	}
	if !strings.Contains(raw, `"items":[]`) {
		t.Fatalf("seeded payload %q is not an empty log", raw)
	}
}

func TestService_FirstAccessCreatesEmptyLogForToday(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	log, err := svc.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if log.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("log date = %q", log.Date)
	}
	if len(log.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(log.Items))
	}

	// The fresh log is persisted, not just returned.
	raw, ok, err := svc.store.Get(ctx, logKey)
	if err != nil || !ok {
		t.Fatalf("expected persisted record, ok=%v err=%v", ok, err)
	}
	if raw == "" {
		t.Fatal("empty persisted payload")
	}
}

func TestService_AddItemAssignsUniqueIDsAndSumsTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.AddItem(ctx, ItemInput{
		Name: "Omelette", Type: model.SourceMeal,
		Nutrition: model.Nutrition{Calories: 250, Protein: 18, Carbs: 2, Fat: 19},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := svc.AddItem(ctx, ItemInput{
		Name: "Cereal", Type: model.SourceProduct,
		Nutrition: model.Nutrition{Calories: 400},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}

	totals, err := svc.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := model.Nutrition{Calories: 650, Protein: 18, Carbs: 2, Fat: 19}
	if totals != want {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}

	log, err := svc.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log.Items) != 2 || log.Items[0].Name != "Omelette" || log.Items[1].Name != "Cereal" {
		t.Fatalf("insertion order not preserved: %+v", log.Items)
	}
}

func TestService_AddItemClampsNegativeNutrition(t *testing.T) {
	svc := newTestService(t)
	it, err := svc.AddItem(context.Background(), ItemInput{
		Name:      "Broken",
		Type:      model.SourceProduct,
		Nutrition: model.Nutrition{Calories: -50, Protein: 5},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.Nutrition.Calories != 0 || it.Nutrition.Protein != 5 {
		t.Fatalf("boundary clamp failed: %+v", it.Nutrition)
	}
}

func TestService_AddThenRemoveRestoresPreAddTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, ItemInput{Name: "Keep", Type: model.SourceMeal,
		Nutrition: model.Nutrition{Calories: 100, Protein: 1, Carbs: 2, Fat: 3}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, err := svc.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}

	it, err := svc.AddItem(ctx, ItemInput{Name: "Transient", Type: model.SourceProduct,
		Nutrition: model.Nutrition{Calories: 999, Protein: 9, Carbs: 9, Fat: 9}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(ctx, it.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after, err := svc.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if after != before {
		t.Fatalf("totals after remove = %+v, want %+v", after, before)
	}

	log, _ := svc.Log(ctx)
	for _, li := range log.Items {
		if li.ID == it.ID {
			t.Fatalf("removed id %q still present", it.ID)
		}
	}
}

func TestService_RemoveUnknownIDIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, ItemInput{Name: "Only", Type: model.SourceMeal,
		Nutrition: model.Nutrition{Calories: 42}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(ctx, "does-not-exist"); err != nil {
		t.Fatalf("remove unknown id: %v", err)
	}

	log, err := svc.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log.Items) != 1 || log.Items[0].Name != "Only" {
		t.Fatalf("log changed by no-op remove: %+v", log.Items)
	}
}

func TestService_DayRolloverDiscardsOldItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 30, 21, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day1 }

	if _, err := svc.AddItem(ctx, ItemInput{Name: "Yesterday", Type: model.SourceMeal,
		Nutrition: model.Nutrition{Calories: 500}}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Cross midnight; the next access must reset the log lazily.
	svc.now = func() time.Time { return day1.Add(12 * time.Hour) }

	log, err := svc.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if log.Date != "2026-08-31" {
		t.Fatalf("log date = %q, want 2026-08-31", log.Date)
	}
	if len(log.Items) != 0 {
		t.Fatalf("old items survived rollover: %+v", log.Items)
	}

	// The reset is persisted, not just an in-memory view.
	raw, ok, err := svc.store.Get(ctx, logKey)
	if err != nil || !ok {
		t.Fatalf("persisted record missing after rollover, ok=%v err=%v", ok, err)
	}
	if want := `"date":"2026-08-31"`; !strings.Contains(raw, want) {
		t.Fatalf("persisted payload %q does not contain %q", raw, want)
	}

	totals, err := svc.Totals(ctx)
	if err != nil || totals != (model.Nutrition{}) {
		t.Fatalf("totals after rollover = %+v err=%v", totals, err)
	}
}

func TestService_CorruptPayloadRecoveredAsFreshLog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.store.Set(ctx, logKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	log, err := svc.Log(ctx)
	if err != nil {
		t.Fatalf("log must not surface corruption: %v", err)
	}
	if log.Date != time.Now().Format("2006-01-02") || len(log.Items) != 0 {
		t.Fatalf("expected fresh log, got %+v", log)
	}

	// The malformed record was overwritten.
	raw, ok, err := svc.store.Get(ctx, logKey)
	if err != nil || !ok {
		t.Fatalf("get after recovery: ok=%v err=%v", ok, err)
	}
	if raw == "{not json" {
		t.Fatal("malformed record was not overwritten")
	}
}

func TestService_EachMutationPublishesExactlyOnce(t *testing.T) {
	notifier := NewNotifier()
	svc := NewService(store.Store{Dir: t.TempDir()}, notifier)
	ctx := context.Background()

	first, second := 0, 0
	notifier.Subscribe("first", func() { first++ })
	notifier.Subscribe("second", func() { second++ })

	it, err := svc.AddItem(ctx, ItemInput{Name: "A", Type: model.SourceMeal})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("after add: first=%d second=%d", first, second)
	}

	if err := svc.RemoveItem(ctx, it.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if first != 2 || second != 2 {
		t.Fatalf("after remove: first=%d second=%d", first, second)
	}

	// Reads never publish.
	if _, err := svc.Log(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}
	if _, err := svc.Totals(ctx); err != nil {
		t.Fatalf("totals: %v", err)
	}
	if first != 2 || second != 2 {
		t.Fatalf("reads published: first=%d second=%d", first, second)
	}
}
