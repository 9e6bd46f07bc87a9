package diet

// FoodItem is a single food entry inside a meal. The JSON field names are
// the wire format inherited from the frontend: Italian, flat, with an
// optional one-level list of interchangeable equivalents.
type FoodItem struct {
	ID          int64      `json:"id,omitempty"`
	Nome        string     `json:"nome"`
	Quantita    float64    `json:"quantita,omitempty"`
	Unita       string     `json:"unita,omitempty"`
	Kcal        float64    `json:"kcal"`
	Proteine    float64    `json:"proteine"`
	Lipidi      float64    `json:"lipidi"`
	Carboidrati float64    `json:"carboidrati"`
	Fibre       float64    `json:"fibre"`
	Categoria   string     `json:"categoria,omitempty"`
	Tipo        string     `json:"tipo,omitempty"`
	Equivalenti []FoodItem `json:"equivalenti,omitempty"`
}

// NutrientTotals is always a recomputed sum over the owning collection's
// foods; it is never edited independently.
type NutrientTotals struct {
	Kcal        float64 `json:"totale_kcal"`
	Proteine    float64 `json:"totale_proteine"`
	Lipidi      float64 `json:"totale_lipidi"`
	Carboidrati float64 `json:"totale_carboidrati"`
	Fibre       float64 `json:"totale_fibre"`
}

// Add returns the element-wise sum of two totals.
func (t NutrientTotals) Add(o NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Kcal:        t.Kcal + o.Kcal,
		Proteine:    t.Proteine + o.Proteine,
		Lipidi:      t.Lipidi + o.Lipidi,
		Carboidrati: t.Carboidrati + o.Carboidrati,
		Fibre:       t.Fibre + o.Fibre,
	}
}

// Meal holds the foods of one meal slot plus its recomputed totals.
type Meal struct {
	Alimenti []FoodItem `json:"alimenti"`
	NutrientTotals
	Note string `json:"note,omitempty"`
}

// Empty reports whether the meal has no foods and should be skipped by
// document rendering.
func (m Meal) Empty() bool { return len(m.Alimenti) == 0 }

// Totals folds the meal's foods into fresh totals.
func (m Meal) Totals() NutrientTotals {
	var t NutrientTotals
	for _, a := range m.Alimenti {
		t = t.Add(NutrientTotals{
			Kcal:        a.Kcal,
			Proteine:    a.Proteine,
			Lipidi:      a.Lipidi,
			Carboidrati: a.Carboidrati,
			Fibre:       a.Fibre,
		})
	}
	return t
}

// The five fixed meal keys, in display order.
const (
	MealColazione = "colazione"
	MealSpuntino  = "spuntino"
	MealPranzo    = "pranzo"
	MealMerenda   = "merenda"
	MealCena      = "cena"
)

// MealKeys is the fixed meal iteration order used everywhere: storage
// defaults, totals recompute and document rendering.
var MealKeys = []string{MealColazione, MealSpuntino, MealPranzo, MealMerenda, MealCena}

// ValidMealKey reports whether key names one of the five meals.
func ValidMealKey(key string) bool {
	for _, k := range MealKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Plan is a patient's complete diet. The five meals are named struct
// fields rather than a string-keyed map so a plan can never be missing
// a meal slot.
type Plan struct {
	Colazione         Meal           `json:"colazione"`
	Spuntino          Meal           `json:"spuntino"`
	Pranzo            Meal           `json:"pranzo"`
	Merenda           Meal           `json:"merenda"`
	Cena              Meal           `json:"cena"`
	TotaleGiornaliero NutrientTotals `json:"totale_giornaliero"`
	Note              string         `json:"note,omitempty"`
	Consigli          []string       `json:"consigli,omitempty"`
}

// EmptyPlan returns a plan with zero totals and no foods, the state a
// patient's diet starts in.
func EmptyPlan() Plan { return Plan{} }

// Meal returns a pointer to the named meal slot, or nil for an unknown key.
func (p *Plan) Meal(key string) *Meal {
	switch key {
	case MealColazione:
		return &p.Colazione
	case MealSpuntino:
		return &p.Spuntino
	case MealPranzo:
		return &p.Pranzo
	case MealMerenda:
		return &p.Merenda
	case MealCena:
		return &p.Cena
	}
	return nil
}

// Recalculated returns a copy of the plan with every meal's totals and the
// daily totals recomputed from the foods. The receiver is not mutated; the
// caller writes the returned value back as one unit.
func (p Plan) Recalculated() Plan {
	out := p
	var daily NutrientTotals
	for _, key := range MealKeys {
		m := out.Meal(key)
		m.NutrientTotals = m.Totals()
		daily = daily.Add(m.NutrientTotals)
	}
	out.TotaleGiornaliero = daily
	return out
}

// AppendFood returns a copy of the plan with food appended to the named
// meal and all totals recomputed. Callers must have validated the key.
func (p Plan) AppendFood(mealKey string, food FoodItem) Plan {
	out := p
	m := out.Meal(mealKey)
	foods := make([]FoodItem, len(m.Alimenti), len(m.Alimenti)+1)
	copy(foods, m.Alimenti)
	m.Alimenti = append(foods, food)
	return out.Recalculated()
}
