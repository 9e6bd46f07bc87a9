package document

import (
	"fmt"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

// Subject is the patient identity the composer prints; the CRUD layer
// maps its richer patient record down to this.
type Subject struct {
	Nome     string
	Cognome  string
	Eta      int
	Email    string
	Telefono string
}

var mealTitles = map[string]string{
	diet.MealColazione: "Colazione",
	diet.MealSpuntino:  "Spuntino",
	diet.MealPranzo:    "Pranzo",
	diet.MealMerenda:   "Merenda",
	diet.MealCena:      "Cena",
}

const (
	chooseSimple     = "Scegliere:"
	chooseElaborated = "Scegliere un alimento da ciascuna fonte: carboidrati, proteine, grassi, contorno."
)

var totalsHeaders = []string{"Kcal", "Proteine (g)", "Lipidi (g)", "Carboidrati (g)", "Fibre (g)"}

// Compose builds the ordered block sequence for a patient's diet plan.
// It never fails: absent optional fields emit no block and empty meals
// are skipped entirely.
func Compose(subject Subject, plan diet.Plan) []Block {
	blocks := []Block{Title{Text: "Piano Nutrizionale"}}

	info := PatientInfo{Lines: []string{
		fmt.Sprintf("Nome: %s %s", subject.Nome, subject.Cognome),
	}}
	if subject.Eta > 0 {
		info.Lines = append(info.Lines, fmt.Sprintf("Età: %d anni", subject.Eta))
	}
	if subject.Email != "" {
		info.Lines = append(info.Lines, "Email: "+subject.Email)
	}
	if subject.Telefono != "" {
		info.Lines = append(info.Lines, "Telefono: "+subject.Telefono)
	}
	blocks = append(blocks, info)

	if plan.Note != "" {
		blocks = append(blocks,
			Subtitle{Text: "Note"},
			Note{Spans: SplitBoldSpans(plan.Note)},
		)
	}

	for _, key := range diet.MealKeys {
		meal := *plan.Meal(key)
		if meal.Empty() {
			continue
		}
		blocks = append(blocks, composeMeal(key, meal)...)
	}

	blocks = append(blocks,
		Subtitle{Text: "Totali Giornalieri"},
		TotalsTable{
			Headers: totalsHeaders,
			Values:  totalsValues(plan.TotaleGiornaliero),
		},
	)

	if len(plan.Consigli) > 0 {
		items := make([][]Span, 0, len(plan.Consigli))
		for _, advice := range plan.Consigli {
			items = append(items, SplitBoldSpans(advice))
		}
		blocks = append(blocks, Subtitle{Text: "Consigli Generali"}, AdviceList{Items: items})
	}

	return blocks
}

func composeMeal(key string, meal diet.Meal) []Block {
	instruction := chooseSimple
	if key == diet.MealPranzo || key == diet.MealCena {
		instruction = chooseElaborated
	}
	blocks := []Block{MealHeading{Text: mealTitles[key], Instruction: instruction}}

	if diet.ShouldUseTable(meal) {
		blocks = append(blocks, categoryTable(meal))
	} else {
		combos := diet.Combine(diet.BulletGroups(meal))
		lines := make([]string, 0, len(combos))
		for _, combo := range combos {
			lines = append(lines, joinCombo(combo))
		}
		blocks = append(blocks, BulletList{Lines: lines})
	}

	if meal.Note != "" {
		blocks = append(blocks, Note{Spans: SplitBoldSpans(meal.Note)})
	}
	return blocks
}

// categoryTable lays the meal out with one column per category, in the
// order the categories first appeared, padding exhausted columns with
// blank cells.
func categoryTable(meal diet.Meal) Table {
	order, byCat := diet.ExpandByCategory(meal)

	headers := make([]string, len(order))
	depth := 0
	for i, cat := range order {
		headers[i] = cat.Header()
		if n := len(byCat[cat]); n > depth {
			depth = n
		}
	}

	rows := make([][]string, depth)
	for r := 0; r < depth; r++ {
		row := make([]string, len(order))
		for c, cat := range order {
			items := byCat[cat]
			if r < len(items) {
				row[c] = diet.FormatWithQuantity(items[r])
			}
		}
		rows[r] = row
	}
	return Table{Headers: headers, Rows: rows}
}

func joinCombo(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " + "
		}
		out += p
	}
	return out
}

func totalsValues(t diet.NutrientTotals) []string {
	return []string{
		fmt.Sprintf("%.1f", t.Kcal),
		fmt.Sprintf("%.1f", t.Proteine),
		fmt.Sprintf("%.1f", t.Lipidi),
		fmt.Sprintf("%.1f", t.Carboidrati),
		fmt.Sprintf("%.1f", t.Fibre),
	}
}
