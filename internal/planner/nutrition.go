package planner

import (
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
)

func baseNutrition() domain.NutritionPlan {
	return domain.NutritionPlan{
		Breakfast: "Havermout of kwark met fruit (start goed!)",
		Lunch:     "Volkoren boterhammen met kip/humus + Groente",
		Dinner:    "Gezonde pot: Groente, Vlees/Vega, Aardappel/Rijst",
		FamilyTip: "Zet een bakje komkommer/tomaat op tafel voor de kleintjes.",
	}
}

// NutritionFor returns the meal guidance for a weekday. Thursday and Saturday
// switch to match timing when the resolved activity is a match.
func NutritionFor(weekday time.Weekday, activity domain.ActivityType) domain.NutritionPlan {
	n := baseNutrition()

	switch weekday {
	case time.Monday:
		n.Lunch = "⚠️ Belangrijk: Eet een stevige lunch (pasta/rijst restje?) voor energie vanavond."
		n.Dinner = "Licht verteerbaar (vóór 18:00). Geen vette hap!"
		n.Snack = "DIRECT na training: Kwark of Eiwitshake (voor herstel in korte nacht)."
		n.FamilyTip = "Kook zondag alvast voor vandaag, zodat je geen stress hebt na werk."

	case time.Tuesday:
		n.Breakfast = "Eieren of Volvette kwark (eiwitten & vetten voor verzadiging)."
		n.Lunch = "Salade of Soep met brood. Voorkom de 'after-dinner dip' op werk."
		n.Dinner = "Veel groenten! Vitamines helpen je immuunsysteem."
		n.FamilyTip = "Eet aan tafel zonder TV. De 2-jarige kopieert jouw eetgedrag."

	case time.Wednesday:
		n.Lunch = "Koolhydraten stapelen: Brood of wraps. Je moet vanavond weer!"
		n.Snack = "Om 16:00 een banaan op het werk. Zorg voor brandstof."
		n.Dinner = "Iets makkelijks maar gezonds (wokgerecht?)."
		n.FamilyTip = "Betrek de oudste (2jr) bij het wassen van de groente."

	case time.Thursday:
		if activity == domain.ActivityMatch {
			n.Lunch = "Grote warme lunch als het kan."
			n.Dinner = "Lichte maaltijd om 17:30. Pasta/Wraps."
			n.Snack = "Banaan en koek mee voor na de wedstrijd."
			n.FamilyTip = "Zorg dat oppas/partner weet wat de kids eten."
			break
		}
		n.Lunch = "Restjes van gisteren of een maaltijdsalade."
		n.Snack = "Koffie/Espresso om 17:00 voor je krachtcircuit."
		n.Dinner = "Eiwitrijk! Kip, Vis of Bonen. Je spieren schreeuwen om bouwstoffen."
		n.FamilyTip = "Zorg dat het eten klaar is voordat je moe wordt van de werkweek."

	case time.Friday:
		n = domain.NutritionPlan{
			Breakfast: "Samen ontbijten! Maak er een feestje van (bijv. roerei).",
			Lunch:     "Monkey Platter: Bordje met stukjes fruit, kaas, worst, brood. Eet samen hetzelfde.",
			Dinner:    "Zelfgemaakte pizza (wraps als bodem) of Traybake uit de oven.",
			FamilyTip: "Jij bent het voorbeeld. Als jij fruit eet, wil de kleine het ook.",
		}

	case time.Saturday:
		if activity == domain.ActivityMatch {
			n = domain.NutritionPlan{
				Breakfast: "Pannenkoeken (gezond) of Havermout. Goede bodem.",
				Lunch:     "3 uur voor de wedstrijd: Laatste grote maaltijd (Pasta/Brood).",
				Snack:     "Neem een banaan en ontbijtkoek mee in je tas.",
				Dinner:    "Herstelmaaltijd na de wedstrijd: Pasta/Wraps met eiwitten.",
				FamilyTip: "Zorg dat de tas met snacks voor de kids ook klaar staat.",
			}
			break
		}
		n.Dinner = "BBQ of lekker koken in het weekend."

	case time.Sunday:
		n = domain.NutritionPlan{
			Breakfast: "Lekker uitslapen en rustig ontbijten.",
			Lunch:     "Soep met broodjes.",
			Dinner:    "MEALPREP ZONDAG: Kook een grote pan pasta/curry voor Ma & Wo.",
			FamilyTip: "Zet bakjes klaar voor je werkdagen. Geen kantine-voedsel deze week!",
		}
	}

	return n
}
