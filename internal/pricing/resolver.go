package pricing

import (
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
)

// Resolve computes the effective public price for a menu item from its
// base price and promotional rules at now. Only enabled rules whose
// window is active are considered; among those the rule with the latest
// StartAt wins, so newer promotions override older overlapping ones.
// Exact StartAt ties go to the greater ID (ObjectIDs are time-prefixed,
// so the most recently created rule wins). Returns the base price and a
// nil rule when no rule applies.
func Resolve(basePrice int64, rules []domain.TemporaryPrice, now time.Time) (int64, *domain.TemporaryPrice) {
	var winner *domain.TemporaryPrice

	for i := range rules {
		rule := &rules[i]
		if !rule.Enabled || RuleStatus(rule.StartAt, rule.EndAt, now) != StatusActive {
			continue
		}
		if winner == nil || rule.StartAt.After(winner.StartAt) {
			winner = rule
			continue
		}
		if rule.StartAt.Equal(winner.StartAt) && rule.ID.Hex() > winner.ID.Hex() {
			winner = rule
		}
	}

	if winner == nil {
		return basePrice, nil
	}
	return winner.Price, winner
}
