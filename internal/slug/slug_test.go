package slug

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Margherita Pizza", "margherita-pizza"},
		{"  Chef's Special  ", "chefs-special"},
		{"Fish & Chips", "fish-chips"},
		{"Crème Brûlée", "cr-me-br-l-e"},
		{"UPPER", "upper"},
		{"double--hyphen -- run", "double-hyphen-run"},
		{"-leading and trailing-", "leading-and-trailing"},
		{"\"Quoted\" name", "quoted-name"},
		{"2 for 1", "2-for-1"},
		{"!!!", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeOnlyProducesValidRunes(t *testing.T) {
	inputs := []string{"Hello, World!", "a_b_c", "  x  ", "ça va?", "tea & biscuits"}
	for _, in := range inputs {
		got := Make(in)
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Make(%q) = %q has edge hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Make(%q) = %q has consecutive hyphens", in, got)
		}
		for _, r := range got {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Errorf("Make(%q) = %q contains invalid rune %q", in, got, r)
			}
		}
	}
}

func TestEnsureUniqueFreeBase(t *testing.T) {
	got, err := EnsureUnique(context.Background(), "Hot Drinks", func(ctx context.Context, c string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "hot-drinks" {
		t.Errorf("slug = %q, want %q", got, "hot-drinks")
	}
}

func TestEnsureUniqueProbesSequentially(t *testing.T) {
	taken := map[string]bool{"hot-drinks": true, "hot-drinks-2": true, "hot-drinks-3": true}
	var probed []string

	got, err := EnsureUnique(context.Background(), "Hot Drinks", func(ctx context.Context, c string) (bool, error) {
		probed = append(probed, c)
		return taken[c], nil
	})
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "hot-drinks-4" {
		t.Errorf("slug = %q, want %q", got, "hot-drinks-4")
	}
	want := []string{"hot-drinks", "hot-drinks-2", "hot-drinks-3", "hot-drinks-4"}
	if len(probed) != len(want) {
		t.Fatalf("probed %d candidates, want %d", len(probed), len(want))
	}
	for i := range want {
		if probed[i] != want[i] {
			t.Errorf("probe[%d] = %q, want %q", i, probed[i], want[i])
		}
	}
}

func TestEnsureUniqueNeverReturnsTaken(t *testing.T) {
	taken := map[string]bool{"soup": true, "soup-2": true}
	got, err := EnsureUnique(context.Background(), "Soup", func(ctx context.Context, c string) (bool, error) {
		return taken[c], nil
	})
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if taken[got] {
		t.Errorf("returned taken slug %q", got)
	}
}

func TestEnsureUniqueExhausted(t *testing.T) {
	calls := 0
	_, err := EnsureUnique(context.Background(), "Soup", func(ctx context.Context, c string) (bool, error) {
		calls++
		return true, nil
	})
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
	if calls != 1000 {
		t.Errorf("probed %d times, want 1000", calls)
	}
}

func TestEnsureUniquePropagatesCheckError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := EnsureUnique(context.Background(), "Soup", func(ctx context.Context, c string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hot drinks", "Hot Drinks"},
		{"  fish and chips ", "Fish And Chips"},
		{"already Title", "Already Title"},
		{"chef's special", "Chef'S Special"},
	}
	for _, c := range cases {
		if got := TitleCase(c.in); got != c.want {
			t.Errorf("TitleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
