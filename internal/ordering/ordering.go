// Package ordering assigns integer sort positions to sibling rows
// (categories within the catalogue, sections within a category).
package ordering

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrIDSetMismatch is returned when a reorder request does not name
// exactly the current sibling set: any extra, missing, duplicate, or
// foreign ID rejects the whole operation.
var ErrIDSetMismatch = errors.New("reorder IDs do not match the sibling set")

// Next returns the order for a newly created sibling when the caller
// supplies none: max of the existing orders plus one, or 0 for the
// first sibling.
func Next(existing []int) int {
	max := -1
	for _, o := range existing {
		if o > max {
			max = o
		}
	}
	return max + 1
}

// Assign maps each requested ID to its new order (position + 1). The
// requested list must be a permutation of current; callers apply the
// result in a single transaction so readers never observe a partially
// renumbered set.
func Assign(requested, current []primitive.ObjectID) (map[primitive.ObjectID]int, error) {
	if len(requested) != len(current) {
		return nil, ErrIDSetMismatch
	}

	siblings := make(map[primitive.ObjectID]bool, len(current))
	for _, id := range current {
		siblings[id] = true
	}

	orders := make(map[primitive.ObjectID]int, len(requested))
	for i, id := range requested {
		if !siblings[id] {
			return nil, ErrIDSetMismatch
		}
		if _, dup := orders[id]; dup {
			return nil, ErrIDSetMismatch
		}
		orders[id] = i + 1
	}

	return orders, nil
}
