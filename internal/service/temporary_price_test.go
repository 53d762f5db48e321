package service

import (
	"context"
	"testing"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/pricing"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type nopBroker struct{}

func (nopBroker) Publish(ctx context.Context, queueName string, message []byte) error { return nil }
func (nopBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}
func (nopBroker) Close() error { return nil }

type fakeItemGetter struct {
	repo.MenuItemRepository
	items map[primitive.ObjectID]*domain.MenuItem
}

func (f *fakeItemGetter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return item, nil
}

type fakePriceStore struct {
	repo.TemporaryPriceRepository
	prices map[primitive.ObjectID]*domain.TemporaryPrice
}

func newFakePriceStore() *fakePriceStore {
	return &fakePriceStore{prices: map[primitive.ObjectID]*domain.TemporaryPrice{}}
}

func (f *fakePriceStore) Create(ctx context.Context, price *domain.TemporaryPrice) error {
	if price.ID.IsZero() {
		price.ID = primitive.NewObjectID()
	}
	price.CreatedAt = time.Now()
	price.UpdatedAt = time.Now()
	stored := *price
	f.prices[price.ID] = &stored
	return nil
}

func (f *fakePriceStore) GetByID(ctx context.Context, menuItemID, id primitive.ObjectID) (*domain.TemporaryPrice, error) {
	price, ok := f.prices[id]
	if !ok || price.MenuItemID != menuItemID {
		return nil, repo.ErrNotFound
	}
	out := *price
	return &out, nil
}

func (f *fakePriceStore) ListByMenuItem(ctx context.Context, menuItemID primitive.ObjectID) ([]domain.TemporaryPrice, error) {
	var out []domain.TemporaryPrice
	for _, p := range f.prices {
		if p.MenuItemID == menuItemID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newPriceService(items *fakeItemGetter, prices *fakePriceStore) *TemporaryPriceService {
	return NewTemporaryPriceService(prices, items, nopBroker{}, zap.NewNop().Sugar())
}

func TestCreateTemporaryPriceDefaultsEnabled(t *testing.T) {
	itemID := primitive.NewObjectID()
	items := &fakeItemGetter{items: map[primitive.ObjectID]*domain.MenuItem{
		itemID: {ID: itemID, Name: "Mojito", BasePrice: 1200},
	}}
	store := newFakePriceStore()
	svc := newPriceService(items, store)

	now := time.Now()
	created, err := svc.Create(context.Background(), itemID, CreateTemporaryPriceInput{
		RuleName: "Happy Hour",
		Price:    800,
		StartAt:  now.Add(-time.Hour),
		EndAt:    now.Add(time.Hour),
	}, "actor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !created.Enabled {
		t.Error("expected rule to default to enabled")
	}
	if created.Status != pricing.StatusActive {
		t.Errorf("expected ACTIVE status, got %s", created.Status)
	}
}

func TestCreateTemporaryPriceUnknownItem(t *testing.T) {
	items := &fakeItemGetter{items: map[primitive.ObjectID]*domain.MenuItem{}}
	svc := newPriceService(items, newFakePriceStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), CreateTemporaryPriceInput{
		RuleName: "Happy Hour",
		Price:    800,
		StartAt:  time.Now(),
		EndAt:    time.Now().Add(time.Hour),
	}, "actor-1")
	if err != repo.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateTemporaryPrice(t *testing.T) {
	itemID := primitive.NewObjectID()
	items := &fakeItemGetter{items: map[primitive.ObjectID]*domain.MenuItem{
		itemID: {ID: itemID, Name: "Mojito", BasePrice: 1200},
	}}
	store := newFakePriceStore()
	svc := newPriceService(items, store)

	now := time.Now()
	original, err := svc.Create(context.Background(), itemID, CreateTemporaryPriceInput{
		RuleName: "Happy Hour",
		Price:    800,
		StartAt:  now.Add(-time.Hour),
		EndAt:    now.Add(time.Hour),
	}, "actor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone, err := svc.Duplicate(context.Background(), itemID, original.ID, "actor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if clone.ID == original.ID {
		t.Error("expected the clone to get its own ID")
	}
	if clone.RuleName != "Happy Hour (Copy)" {
		t.Errorf("expected copy suffix, got %q", clone.RuleName)
	}
	if clone.Enabled {
		t.Error("expected the clone to start disabled")
	}
	if clone.Price != original.Price || !clone.StartAt.Equal(original.StartAt) || !clone.EndAt.Equal(original.EndAt) {
		t.Error("expected the clone to keep price and window")
	}
}

func TestListAnnotatesStatus(t *testing.T) {
	itemID := primitive.NewObjectID()
	items := &fakeItemGetter{items: map[primitive.ObjectID]*domain.MenuItem{
		itemID: {ID: itemID, Name: "Mojito", BasePrice: 1200},
	}}
	store := newFakePriceStore()
	svc := newPriceService(items, store)

	now := time.Now()
	windows := []struct {
		name     string
		startAt  time.Time
		endAt    time.Time
		expected pricing.Status
	}{
		{"past", now.Add(-48 * time.Hour), now.Add(-24 * time.Hour), pricing.StatusExpired},
		{"current", now.Add(-time.Hour), now.Add(time.Hour), pricing.StatusActive},
		{"future", now.Add(24 * time.Hour), now.Add(48 * time.Hour), pricing.StatusUpcoming},
	}
	for _, w := range windows {
		if _, err := svc.Create(context.Background(), itemID, CreateTemporaryPriceInput{
			RuleName: w.name,
			Price:    500,
			StartAt:  w.startAt,
			EndAt:    w.endAt,
		}, "actor-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	listed, err := svc.List(context.Background(), itemID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(listed))
	}

	byName := make(map[string]pricing.Status, len(listed))
	for _, rule := range listed {
		byName[rule.RuleName] = rule.Status
	}
	for _, w := range windows {
		if byName[w.name] != w.expected {
			t.Errorf("rule %s: expected %s, got %s", w.name, w.expected, byName[w.name])
		}
	}
}
