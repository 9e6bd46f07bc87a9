package diet

import "strings"

// Category is the coarse nutritional bucket used for diet-plan layout.
// It is derived on every render and never persisted.
type Category int

const (
	CategoryCarb Category = iota
	CategoryProtein
	CategoryFat
	CategorySide
)

func (c Category) String() string {
	switch c {
	case CategoryCarb:
		return "carboidrati"
	case CategoryProtein:
		return "proteine"
	case CategoryFat:
		return "grassi"
	case CategorySide:
		return "contorni"
	}
	return "carboidrati"
}

// Header returns the table-column header for the category.
func (c Category) Header() string {
	switch c {
	case CategoryCarb:
		return "FONTI DI CARBOIDRATI"
	case CategoryProtein:
		return "FONTI DI PROTEINE"
	case CategoryFat:
		return "FONTI DI GRASSI"
	case CategorySide:
		return "VERDURE E CONTORNI"
	}
	return "FONTI DI CARBOIDRATI"
}

// classifyRule pairs a category with the keywords that select it. Rules
// are evaluated in order; the first keyword hit wins.
type classifyRule struct {
	category Category
	keywords []string
}

// The rule table. Precedence is carbohydrate, protein, fat, side.
var classifyRules = []classifyRule{
	{CategoryCarb, []string{
		"pane", "pasta", "riso", "patate", "patata", "cereali", "avena",
		"orzo", "farro", "gnocchi", "polenta", "couscous", "cous cous",
		"fette biscottate", "crackers", "grissini", "biscott", "farina",
	}},
	{CategoryProtein, []string{
		"pollo", "tacchino", "manzo", "vitello", "maiale", "carne",
		"pesce", "tonno", "salmone", "merluzzo", "orata", "branzino",
		"uova", "uovo", "prosciutto", "bresaola", "legumi", "ceci",
		"fagioli", "lenticchie", "formagg", "ricotta", "yogurt",
	}},
	{CategoryFat, []string{
		"olio", "burro", "noci", "mandorle", "nocciole", "avocado",
		"semi di", "pistacchi", "arachidi",
	}},
	{CategorySide, []string{
		"insalata", "verdur", "zucchine", "spinaci", "pomodor", "carote",
		"broccoli", "finocchi", "melanzane", "peperoni", "contorno",
	}},
}

// Looser root-word fallbacks, checked only when no keyword matched.
var classifyFallbacks = []classifyRule{
	{CategoryCarb, []string{"carbo"}},
	{CategoryProtein, []string{"prote"}},
	{CategoryFat, []string{"grass", "lipid", "condiment"}},
	{CategorySide, []string{"verdur", "contorn", "vegetal"}},
}

// Classify maps a food item to its nutritional category. It is total:
// name, category and type text are case-folded into one blob, matched
// against the rule table, then against the root-word fallbacks, and
// anything still unmatched defaults to the carbohydrate bucket.
//
// Grouping always classifies the main item only; equivalents inherit the
// parent's category.
func Classify(food FoodItem) Category {
	blob := strings.ToLower(food.Nome + " " + food.Categoria + " " + food.Tipo)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(blob, kw) {
				return rule.category
			}
		}
	}
	for _, rule := range classifyFallbacks {
		for _, kw := range rule.keywords {
			if strings.Contains(blob, kw) {
				return rule.category
			}
		}
	}
	return CategoryCarb
}
