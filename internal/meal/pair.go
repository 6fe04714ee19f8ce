package meal

import "strings"

// SplitPair splits a "label:value" entry. Anything other than exactly one
// colon keeps the whole entry as the label with NoValue as the value.
func SplitPair(entry string) NutritionPair {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 {
		return NutritionPair{Label: entry, Value: NoValue}
	}
	return NutritionPair{
		Label: strings.TrimSpace(parts[0]),
		Value: strings.TrimSpace(parts[1]),
	}
}
