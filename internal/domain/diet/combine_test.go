package diet

import (
	"reflect"
	"testing"
)

func foods(names ...string) []FoodItem {
	out := make([]FoodItem, len(names))
	for i, n := range names {
		out[i] = FoodItem{Nome: n}
	}
	return out
}

func TestCombine_SingleGroupIsNoCrossProduct(t *testing.T) {
	got := Combine([][]FoodItem{foods("Mela", "Pera", "Banana")})
	if len(got) != 3 {
		t.Fatalf("expected 3 singleton combinations, got %d", len(got))
	}
	for i, combo := range got {
		if len(combo) != 1 {
			t.Errorf("combination %d should be a singleton, got %v", i, combo)
		}
	}
}

func TestCombine_TwoGroupsAMajorOrder(t *testing.T) {
	got := Combine([][]FoodItem{foods("A0", "A1"), foods("B0", "B1", "B2")})
	if len(got) != 6 {
		t.Fatalf("2x3 groups must yield 6 combinations, got %d", len(got))
	}
	want := [][]string{
		{"A0", "B0"}, {"A0", "B1"}, {"A0", "B2"},
		{"A1", "B0"}, {"A1", "B1"}, {"A1", "B2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestCombine_ThreeGroupsLastVariesFastest(t *testing.T) {
	got := Combine([][]FoodItem{foods("A0", "A1"), foods("B0"), foods("C0", "C1")})
	want := [][]string{
		{"A0", "B0", "C0"}, {"A0", "B0", "C1"},
		{"A1", "B0", "C0"}, {"A1", "B0", "C1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestCombine_EmptyInput(t *testing.T) {
	if got := Combine(nil); got != nil {
		t.Errorf("no groups should yield no combinations, got %v", got)
	}
	if got := Combine([][]FoodItem{foods("A"), nil}); got != nil {
		t.Errorf("an empty group should yield no combinations, got %v", got)
	}
}

func TestCombine_CapsRunawayProducts(t *testing.T) {
	big := foods("a", "b", "c", "d", "e")
	got := Combine([][]FoodItem{big, big, big, big})
	if len(got) != MaxCombinations {
		t.Errorf("expected product capped at %d, got %d", MaxCombinations, len(got))
	}
}

func TestFormatWithQuantity(t *testing.T) {
	cases := []struct {
		food FoodItem
		want string
	}{
		{FoodItem{Nome: "Latte", Quantita: 200, Unita: "ml"}, "Latte (200 ml)"},
		{FoodItem{Nome: "Olio", Quantita: 10.5, Unita: "g"}, "Olio (10.5 g)"},
		{FoodItem{Nome: "Pane", Quantita: 50, Unita: "grammi"}, "Pane (50 g)"},
		{FoodItem{Nome: "Caffè"}, "Caffè"},
		{FoodItem{Nome: "Tè", Quantita: 1}, "Tè"},
	}
	for _, c := range cases {
		if got := FormatWithQuantity(c.food); got != c.want {
			t.Errorf("FormatWithQuantity(%+v) = %q, want %q", c.food, got, c.want)
		}
	}
}
