package ordering

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name     string
		existing []int
		want     int
	}{
		{"empty sibling set", nil, 0},
		{"single sibling", []int{0}, 1},
		{"dense", []int{0, 1, 2}, 3},
		{"sparse", []int{1, 4, 9}, 10},
		{"unsorted", []int{7, 2, 5}, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Next(c.existing); got != c.want {
				t.Errorf("Next(%v) = %d, want %d", c.existing, got, c.want)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	siblings := []primitive.ObjectID{a, b, c}

	orders, err := Assign([]primitive.ObjectID{c, a, b}, siblings)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if orders[c] != 1 || orders[a] != 2 || orders[b] != 3 {
		t.Errorf("orders = {a:%d b:%d c:%d}, want {a:2 b:3 c:1}", orders[a], orders[b], orders[c])
	}
}

func TestAssignRejectsMissingID(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	_, err := Assign([]primitive.ObjectID{a, b}, []primitive.ObjectID{a, b, c})
	if !errors.Is(err, ErrIDSetMismatch) {
		t.Fatalf("error = %v, want ErrIDSetMismatch", err)
	}
}

func TestAssignRejectsForeignID(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	foreign := primitive.NewObjectID()

	_, err := Assign([]primitive.ObjectID{a, foreign}, []primitive.ObjectID{a, b})
	if !errors.Is(err, ErrIDSetMismatch) {
		t.Fatalf("error = %v, want ErrIDSetMismatch", err)
	}
}

func TestAssignRejectsDuplicateID(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	_, err := Assign([]primitive.ObjectID{a, a}, []primitive.ObjectID{a, b})
	if !errors.Is(err, ErrIDSetMismatch) {
		t.Fatalf("error = %v, want ErrIDSetMismatch", err)
	}
}
