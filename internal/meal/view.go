package meal

// Labels used by the display model.
const (
	HeaderSuffix = " 급식 정보"
	CalorieLabel = "칼로리"
	EmptyMenu    = "메뉴 정보가 없습니다."
)

// View is the display model for one day's meal.
type View struct {
	Header    string
	Menu      []string
	MenuEmpty bool
	Nutrition []NutritionPair
}

// NewView builds the display model for data looked up on isoDate.
// Menu items lose their allergen codes; calories lead the nutrition rows.
func NewView(d Data, isoDate string) (View, error) {
	date, err := FormatDisplayDate(isoDate)
	if err != nil {
		return View{}, err
	}
	v := View{
		Header:    date + HeaderSuffix,
		Menu:      make([]string, 0, len(d.Menu)),
		Nutrition: make([]NutritionPair, 0, len(d.Nutrition)+1),
	}
	for _, item := range d.Menu {
		v.Menu = append(v.Menu, StripAllergens(item))
	}
	v.MenuEmpty = len(v.Menu) == 0

	cal := d.Calorie
	if cal == "" {
		cal = NoCalorie
	}
	v.Nutrition = append(v.Nutrition, NutritionPair{Label: CalorieLabel, Value: cal})
	for _, line := range d.Nutrition {
		v.Nutrition = append(v.Nutrition, SplitPair(line))
	}
	return v, nil
}
