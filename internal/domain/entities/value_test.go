package entities_test

import (
	"strings"
	"testing"

	"github.com/whiteelite/narrow/internal/domain/entities"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a, b     entities.Value
		want     string
		wantKind entities.ValueKind
	}{
		{"two texts", entities.Text("1"), entities.Text("2"), "12", entities.ValueKindText},
		{"number then text", entities.Lift(1), entities.Text("2"), "12", entities.ValueKindText},
		{"text then number", entities.Text("1"), entities.Lift(2), "12", entities.ValueKindText},
		{"two numbers", entities.Lift(1), entities.Lift(2), "3", entities.ValueKindNumber},
		{"two floats", entities.Lift(1.5), entities.Lift(2.25), "3.75", entities.ValueKindNumber},
	}

	for _, tc := range cases {
		got := entities.Combine(tc.a, tc.b)
		if got.String() != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got.String(), tc.want)
		}
		if got.Kind() != tc.wantKind {
			t.Errorf("%s: got kind %q, want %q", tc.name, got.Kind(), tc.wantKind)
		}
	}
}

func TestCombine_Idempotent(t *testing.T) {
	t.Parallel()

	a, b := entities.Lift(1), entities.Text("2")
	first := entities.Combine(a, b)
	second := entities.Combine(a, b)
	if first != second {
		t.Fatalf("same inputs produced different values: %v vs %v", first, second)
	}
}

func TestMergeStrings_RoundTrip(t *testing.T) {
	t.Parallel()

	merged := entities.MergeStrings("Ashutosh", " Bhadoria")
	if merged != "Ashutosh Bhadoria" {
		t.Fatalf("got %q", merged)
	}

	tokens := strings.Split(merged, " ")
	if len(tokens) != 2 || tokens[0] != "Ashutosh" || tokens[1] != "Bhadoria" {
		t.Fatalf("round trip lost tokens: %q", tokens)
	}
}

func TestMergeNumbers(t *testing.T) {
	t.Parallel()

	if got := entities.MergeNumbers(1, 2); got != 3 {
		t.Errorf("ints: got %d", got)
	}
	if got := entities.MergeNumbers(1.5, 2.5); got != 4.0 {
		t.Errorf("floats: got %f", got)
	}
}

func TestLift(t *testing.T) {
	t.Parallel()

	if got := entities.Lift("hello"); got.Kind() != entities.ValueKindText || got.String() != "hello" {
		t.Errorf("string: got %q kind %q", got.String(), got.Kind())
	}
	if got := entities.Lift(42); got.Kind() != entities.ValueKindNumber || got.String() != "42" {
		t.Errorf("int: got %q kind %q", got.String(), got.Kind())
	}
	if got := entities.Lift(int64(7)); got.Kind() != entities.ValueKindNumber || got.String() != "7" {
		t.Errorf("int64: got %q kind %q", got.String(), got.Kind())
	}
	if got := entities.Lift(2.5); got.Kind() != entities.ValueKindNumber || got.String() != "2.5" {
		t.Errorf("float64: got %q kind %q", got.String(), got.Kind())
	}
}

func TestValue_ZeroIsNumberZero(t *testing.T) {
	t.Parallel()

	var zero entities.Value
	if zero.Kind() != entities.ValueKindNumber || zero.String() != "0" {
		t.Fatalf("got %q kind %q", zero.String(), zero.Kind())
	}
}
