package diet

// maxEquivalentsForBullets is the largest equivalent count a single food
// may carry before the meal is promoted to table layout.
const maxEquivalentsForBullets = 2

// ShouldUseTable decides the rendering strategy for a meal. Table layout
// is used when the main food items span more than one category, or when
// any single item carries more than two equivalents; everything else
// renders as bullet combinations. An empty meal returns false; callers
// skip empty meals entirely.
func ShouldUseTable(meal Meal) bool {
	if meal.Empty() {
		return false
	}
	seen := map[Category]bool{}
	for _, food := range meal.Alimenti {
		seen[Classify(food)] = true
		if len(seen) > 1 {
			return true
		}
		if len(food.Equivalenti) > maxEquivalentsForBullets {
			return true
		}
	}
	return false
}
