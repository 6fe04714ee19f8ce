package meal

import (
	"regexp"
	"strings"
)

// Break is the marker the API puts between items of one field.
const Break = "<br/>"

// allergens matches the parenthesised allergen codes after a dish name.
var allergens = regexp.MustCompile(`\([^)]*\)`)

// SplitList splits a break-delimited field and drops blank entries.
func SplitList(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	for _, item := range strings.Split(raw, Break) {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// StripAllergens removes parenthesised annotations from a menu item.
func StripAllergens(item string) string {
	return strings.TrimSpace(allergens.ReplaceAllString(item, ""))
}
