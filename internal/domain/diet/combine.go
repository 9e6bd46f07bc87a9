package diet

import "strconv"

// MaxCombinations bounds the cartesian product built for bullet
// rendering. The product of group sizes grows multiplicatively and
// nothing upstream limits equivalents per item, so generation stops
// after this many combinations; the retained prefix keeps the documented
// product order.
const MaxCombinations = 64

// Combine produces the display combinations for the given ordered
// groups: one choice from each group, formatted with FormatWithQuantity.
// A single group yields one singleton combination per item; two or more
// groups yield the full cartesian product in lexicographic order with
// the last group varying fastest (for two groups this is the A-major,
// B-minor order).
func Combine(groups [][]FoodItem) [][]string {
	if len(groups) == 0 {
		return nil
	}
	for _, g := range groups {
		if len(g) == 0 {
			return nil
		}
	}

	var out [][]string
	idx := make([]int, len(groups))
	for {
		combo := make([]string, len(groups))
		for i, g := range groups {
			combo[i] = FormatWithQuantity(g[idx[i]])
		}
		out = append(out, combo)
		if len(out) >= MaxCombinations {
			return out
		}

		// Advance the index vector, last position fastest.
		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(groups[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// FormatWithQuantity renders a food as "Nome (quantita unita)". Whole
// quantities print without a decimal point, the unit "grammi" is
// normalized to "g", and a food with no quantity or unit renders as the
// bare name.
func FormatWithQuantity(food FoodItem) string {
	if food.Quantita == 0 || food.Unita == "" {
		return food.Nome
	}
	unit := food.Unita
	if unit == "g" || unit == "grammi" {
		unit = "g"
	}
	qty := strconv.FormatFloat(food.Quantita, 'f', -1, 64)
	return food.Nome + " (" + qty + " " + unit + ")"
}
