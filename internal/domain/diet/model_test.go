package diet

import "testing"

func TestPlanAppendFood_RecomputesTotals(t *testing.T) {
	plan := EmptyPlan()
	plan = plan.AppendFood(MealColazione, FoodItem{Nome: "Latte", Kcal: 120, Proteine: 6.8, Lipidi: 6.4, Carboidrati: 9.6})
	plan = plan.AppendFood(MealColazione, FoodItem{Nome: "Pane", Kcal: 130, Proteine: 4, Carboidrati: 26, Fibre: 2})

	if got := plan.Colazione.Kcal; got != 250 {
		t.Errorf("meal kcal = %v, want 250", got)
	}
	if got := plan.TotaleGiornaliero.Kcal; got != 250 {
		t.Errorf("daily kcal = %v, want 250", got)
	}
	if got := plan.TotaleGiornaliero.Fibre; got != 2 {
		t.Errorf("daily fiber = %v, want 2", got)
	}
}

func TestPlanAppendFood_DoesNotMutateReceiver(t *testing.T) {
	orig := EmptyPlan()
	_ = orig.AppendFood(MealPranzo, FoodItem{Nome: "Riso", Kcal: 330})
	if len(orig.Pranzo.Alimenti) != 0 || orig.TotaleGiornaliero.Kcal != 0 {
		t.Error("AppendFood must return a new plan, not mutate the original")
	}
}

func TestPlanRecalculated_Idempotent(t *testing.T) {
	plan := EmptyPlan()
	plan.Cena.Alimenti = []FoodItem{{Nome: "Orata", Kcal: 180, Proteine: 32}}
	once := plan.Recalculated()
	twice := once.Recalculated()
	if once.TotaleGiornaliero != twice.TotaleGiornaliero {
		t.Errorf("recompute is not idempotent: %+v vs %+v", once.TotaleGiornaliero, twice.TotaleGiornaliero)
	}
	if once.Cena.NutrientTotals != twice.Cena.NutrientTotals {
		t.Error("meal totals changed on second recompute")
	}
}

func TestPlanRecalculated_SumsAcrossMeals(t *testing.T) {
	plan := EmptyPlan()
	plan.Colazione.Alimenti = []FoodItem{{Kcal: 100}}
	plan.Pranzo.Alimenti = []FoodItem{{Kcal: 500}}
	plan.Cena.Alimenti = []FoodItem{{Kcal: 400}}
	got := plan.Recalculated().TotaleGiornaliero.Kcal
	if got != 1000 {
		t.Errorf("daily kcal = %v, want 1000", got)
	}
}

func TestValidMealKey(t *testing.T) {
	for _, k := range MealKeys {
		if !ValidMealKey(k) {
			t.Errorf("%q should be valid", k)
		}
	}
	if ValidMealKey("brunch") {
		t.Error("unknown meal key accepted")
	}
}

func TestPlanMeal_UnknownKey(t *testing.T) {
	p := EmptyPlan()
	if p.Meal("brunch") != nil {
		t.Error("unknown key should return nil")
	}
}
