package meal

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Record fields consumed from a mealServiceDietInfo row.
const (
	FieldDishName  = "DDISH_NM"
	FieldCalorie   = "CAL_INFO"
	FieldNutrition = "NTR_INFO"
)

// Record is the first row of an API response.
type Record struct {
	DishName      string
	CalorieInfo   string
	NutritionInfo string

	node *xmlquery.Node
}

// Field returns the text of the row's first descendant element named name,
// or "" when there is none.
func (r Record) Field(name string) string {
	if r.node == nil {
		return ""
	}
	n, err := xmlquery.Query(r.node, ".//"+name)
	if err != nil || n == nil {
		return ""
	}
	return n.InnerText()
}

// ExtractRecord picks the first row element out of doc. Later rows are
// ignored, never merged.
func ExtractRecord(doc *xmlquery.Node, q Query) (Record, error) {
	if doc == nil {
		return Record{}, &NotFoundError{Date: q.Date}
	}
	rows := xmlquery.Find(doc, "//row")
	if len(rows) == 0 {
		nf := &NotFoundError{Date: q.Date}
		if res := xmlquery.FindOne(doc, "//RESULT"); res != nil {
			nf.Code = childText(res, "CODE")
			nf.Message = childText(res, "MESSAGE")
		}
		return Record{}, nf
	}
	r := Record{node: rows[0]}
	r.DishName = r.Field(FieldDishName)
	r.CalorieInfo = r.Field(FieldCalorie)
	r.NutritionInfo = r.Field(FieldNutrition)
	return r, nil
}

// Parse extracts the first record of doc and splits its fields.
func Parse(doc *xmlquery.Node, q Query) (Data, error) {
	r, err := ExtractRecord(doc, q)
	if err != nil {
		return Data{}, err
	}
	return r.Data(), nil
}

// Data splits the record's break-delimited fields.
func (r Record) Data() Data {
	cal := r.CalorieInfo
	if cal == "" {
		cal = NoCalorie
	}
	return Data{
		Menu:      SplitList(r.DishName),
		Calorie:   cal,
		Nutrition: SplitList(r.NutritionInfo),
	}
}

func childText(n *xmlquery.Node, name string) string {
	c := xmlquery.FindOne(n, name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}
