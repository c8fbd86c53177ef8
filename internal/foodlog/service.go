package foodlog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"nutriplan-cli/internal/model"
	"nutriplan-cli/internal/store"

	"github.com/google/uuid"
)

// logKey is the single logical record the service owns. The suffix is a
// schema version: bump it to abandon old payloads instead of migrating.
const logKey = "nutriplan_log_v3"

// ItemInput is the caller-supplied part of a logged item; the service
// assigns the id.
type ItemInput struct {
	Name      string
	Image     string
	Type      model.SourceType
	Nutrition model.Nutrition
}

// Service is the sole owner of the persisted daily log. Every operation
// runs the day-rollover guard first: if the stored log is not dated today
// (local time), it is replaced by a fresh empty log before the operation
// proceeds. There is no background timer; staleness is detected lazily on
// the next access.
//
// Write failures are surfaced to the caller without retry; the persisted
// state may then be behind the caller's view, so callers should re-read.
type Service struct {
	store    store.Store
	notifier *Notifier

	// now is injectable for rollover tests.
	now func() time.Time

	mu sync.Mutex
}

func NewService(s store.Store, n *Notifier) *Service {
	return &Service{store: s, notifier: n, now: time.Now}
}

// Notifier returns the change channel mutations publish on.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// Initialize seeds an empty log for today when no record exists yet.
// Call once at process start.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.ensureCurrent(ctx)
	return err
}

// ensureCurrent reads the persisted record and returns today's log,
// resetting storage first when the record is missing, unparsable, or dated
// another day. Callers must hold s.mu.
func (s *Service) ensureCurrent(ctx context.Context) (model.DailyLog, error) {
	raw, ok, err := s.store.Get(ctx, logKey)
	if err != nil {
		return model.DailyLog{}, err
	}
	if ok {
		var log model.DailyLog
		// An unparsable payload is treated as absent, never surfaced.
		if err := json.Unmarshal([]byte(raw), &log); err == nil && log.Date == s.today() {
			if log.Items == nil {
				log.Items = []model.LoggedItem{}
			}
			return log, nil
		}
	}

	fresh := model.DailyLog{Date: s.today(), Items: []model.LoggedItem{}}
	if err := s.save(ctx, fresh); err != nil {
		return model.DailyLog{}, err
	}
	return fresh, nil
}

func (s *Service) save(ctx context.Context, log model.DailyLog) error {
	b, err := json.Marshal(log)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, logKey, string(b))
}

// Log returns the current (rollover-checked) daily log.
func (s *Service) Log(ctx context.Context) (model.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureCurrent(ctx)
}

// AddItem assigns a fresh id, appends the entry to today's log, persists,
// and publishes a change event. Negative nutrition values are clamped to 0
// at this boundary.
func (s *Service) AddItem(ctx context.Context, in ItemInput) (model.LoggedItem, error) {
	s.mu.Lock()
	log, err := s.ensureCurrent(ctx)
	if err != nil {
		s.mu.Unlock()
		return model.LoggedItem{}, err
	}

	item := model.LoggedItem{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Image: in.Image,
		Type:  in.Type,
		Nutrition: model.Nutrition{
			Calories: nonNegative(in.Nutrition.Calories),
			Protein:  nonNegative(in.Nutrition.Protein),
			Carbs:    nonNegative(in.Nutrition.Carbs),
			Fat:      nonNegative(in.Nutrition.Fat),
		},
	}
	log.Items = append(log.Items, item)
	if err := s.save(ctx, log); err != nil {
		s.mu.Unlock()
		return model.LoggedItem{}, err
	}
	s.mu.Unlock()

	// Publish outside the lock: handlers commonly read back through Log.
	s.notifier.Publish()
	return item, nil
}

// RemoveItem deletes the entry with the given id if present. Removing an
// unknown id is a no-op on the log's contents; the operation still persists
// and publishes, matching AddItem's contract.
func (s *Service) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	log, err := s.ensureCurrent(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	kept := log.Items[:0]
	for _, it := range log.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	log.Items = kept
	if err := s.save(ctx, log); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.Publish()
	return nil
}

// Totals returns the field-wise nutrition sum for today's log.
func (s *Service) Totals(ctx context.Context) (model.Nutrition, error) {
	log, err := s.Log(ctx)
	if err != nil {
		return model.Nutrition{}, err
	}
	return ComputeTotals(log), nil
}
