package diet

// ExpandByCategory flattens a meal's foods into per-category lists. Each
// main item is classified and appended to its category, immediately
// followed by its equivalents in listed order; equivalents never change
// the grouping key. Categories with no items are absent.
//
// The first return value carries the categories in order of first
// appearance, so rendering follows the order the foods were entered.
func ExpandByCategory(meal Meal) ([]Category, map[Category][]FoodItem) {
	order := make([]Category, 0, 4)
	byCat := make(map[Category][]FoodItem)
	for _, food := range meal.Alimenti {
		cat := Classify(food)
		if _, ok := byCat[cat]; !ok {
			order = append(order, cat)
		}
		byCat[cat] = append(byCat[cat], food)
		for _, eq := range food.Equivalenti {
			eq.Equivalenti = nil // one level deep only
			byCat[cat] = append(byCat[cat], eq)
		}
	}
	return order, byCat
}

// BulletGroups builds the grouping used for bullet-mode combinations:
// every main food item forms its own group together with its flattened
// equivalents, so a combination picks exactly one choice per main slot.
func BulletGroups(meal Meal) [][]FoodItem {
	groups := make([][]FoodItem, 0, len(meal.Alimenti))
	for _, food := range meal.Alimenti {
		group := make([]FoodItem, 0, 1+len(food.Equivalenti))
		main := food
		main.Equivalenti = nil
		group = append(group, main)
		for _, eq := range food.Equivalenti {
			eq.Equivalenti = nil
			group = append(group, eq)
		}
		groups = append(groups, group)
	}
	return groups
}
