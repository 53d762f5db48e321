package pricing

import (
	"testing"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rule(price int64, start, end time.Time, enabled bool) domain.TemporaryPrice {
	return domain.TemporaryPrice{
		ID:      primitive.NewObjectID(),
		Price:   price,
		StartAt: start,
		EndAt:   end,
		Enabled: enabled,
	}
}

func TestResolveNoRules(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	price, winner := Resolve(1000, nil, now)
	if price != 1000 {
		t.Errorf("price = %d, want 1000", price)
	}
	if winner != nil {
		t.Errorf("winner = %v, want nil", winner)
	}
}

func TestResolveNoActiveRules(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rules := []domain.TemporaryPrice{
		rule(800, now.Add(time.Hour), now.Add(2*time.Hour), true),   // upcoming
		rule(700, now.Add(-2*time.Hour), now.Add(-time.Hour), true), // expired
		rule(600, now.Add(-time.Hour), now.Add(time.Hour), false),   // disabled
	}

	price, winner := Resolve(1000, rules, now)
	if price != 1000 {
		t.Errorf("price = %d, want base price 1000", price)
	}
	if winner != nil {
		t.Errorf("winner = %v, want nil", winner)
	}
}

func TestResolveLatestStartWins(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rules := []domain.TemporaryPrice{
		rule(800, now.Add(-24*time.Hour), now.Add(24*time.Hour), true),
		rule(500, now.Add(-2*time.Hour), now.Add(2*time.Hour), true),
	}

	price, winner := Resolve(1000, rules, now)
	if price != 500 {
		t.Errorf("price = %d, want 500 (later start wins)", price)
	}
	if winner == nil || winner.Price != 500 {
		t.Fatalf("winner = %v, want the 500 rule", winner)
	}
}

func TestResolveDisabledRuleSkipped(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rules := []domain.TemporaryPrice{
		rule(800, now.Add(-24*time.Hour), now.Add(24*time.Hour), true),
		rule(500, now.Add(-2*time.Hour), now.Add(2*time.Hour), false),
	}

	price, _ := Resolve(1000, rules, now)
	if price != 800 {
		t.Errorf("price = %d, want 800 (disabled rule skipped)", price)
	}
}

func TestResolveUpcomingNeverInfluences(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rules := []domain.TemporaryPrice{
		rule(800, now.Add(-time.Hour), now.Add(time.Hour), true),
		// later start, but not yet active
		rule(100, now.Add(time.Minute), now.Add(time.Hour), true),
	}

	price, _ := Resolve(1000, rules, now)
	if price != 800 {
		t.Errorf("price = %d, want 800 (upcoming rule ignored)", price)
	}
}

func TestResolveBoundaryCountsAsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rules := []domain.TemporaryPrice{
		rule(500, now, now.Add(time.Hour), true),
	}

	price, _ := Resolve(1000, rules, now)
	if price != 500 {
		t.Errorf("price = %d, want 500 (start boundary is active)", price)
	}
}

func TestResolveEqualStartTieBreaksOnGreaterID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	older := rule(700, start, end, true)
	newer := rule(400, start, end, true)
	if older.ID.Hex() > newer.ID.Hex() {
		older, newer = newer, older
	}

	// order in the slice must not matter
	for _, rules := range [][]domain.TemporaryPrice{
		{older, newer},
		{newer, older},
	} {
		price, winner := Resolve(1000, rules, now)
		if winner == nil || winner.ID != newer.ID {
			t.Fatalf("winner = %v, want rule with greater ID %s", winner, newer.ID.Hex())
		}
		if price != newer.Price {
			t.Errorf("price = %d, want %d", price, newer.Price)
		}
	}
}
